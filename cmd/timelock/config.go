package timelock

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"

	"github.com/smartcontractkit/timelock/internal/utils/safecast"
)

const (
	envMinDelay  = "TIMELOCK_MIN_DELAY"
	envAddress   = "TIMELOCK_ADDRESS"
	envDeployer  = "TIMELOCK_DEPLOYER"
	envProposers = "TIMELOCK_PROPOSERS"
	envExecutors = "TIMELOCK_EXECUTORS"
	envStartTime = "TIMELOCK_START_TIME"
)

// Config is the deployment of the simulated timelock. Unset addresses are filled in with
// generated accounts.
type Config struct {
	Address   common.Address
	Deployer  common.Address
	MinDelay  uint64
	Proposers []common.Address
	Executors []common.Address
	StartTime uint64
}

// LoadConfig reads the configuration from the given .env file, falling back to the process
// environment for variables the file does not set. An empty path reads the environment only.
func LoadConfig(envPath string) (*Config, error) {
	vars := map[string]string{}
	if envPath != "" {
		var err error
		if vars, err = godotenv.Read(envPath); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", envPath, err)
		}
	}
	lookup := func(key string) string {
		if v, ok := vars[key]; ok {
			return strings.TrimSpace(v)
		}

		return strings.TrimSpace(os.Getenv(key))
	}

	cfg := &Config{}

	var err error
	if cfg.MinDelay, err = parseUint(lookup, envMinDelay, 0); err != nil {
		return nil, err
	}

	now, err := safecast.Int64ToUint64(time.Now().Unix())
	if err != nil {
		return nil, err
	}
	if cfg.StartTime, err = parseUint(lookup, envStartTime, now); err != nil {
		return nil, err
	}

	if cfg.Address, err = parseAddress(lookup, envAddress); err != nil {
		return nil, err
	}
	if cfg.Deployer, err = parseAddress(lookup, envDeployer); err != nil {
		return nil, err
	}
	if cfg.Proposers, err = parseAddresses(lookup, envProposers); err != nil {
		return nil, err
	}
	if cfg.Executors, err = parseAddresses(lookup, envExecutors); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseUint(lookup func(string) string, key string, def uint64) (uint64, error) {
	v := lookup(key)
	if v == "" {
		return def, nil
	}

	n, err := safecast.StringToUint64(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return n, nil
}

func parseAddress(lookup func(string) string, key string) (common.Address, error) {
	v := lookup(key)
	if v == "" {
		return common.Address{}, nil
	}
	if !common.IsHexAddress(v) {
		return common.Address{}, fmt.Errorf("invalid %s: %q is not an address", key, v)
	}

	return common.HexToAddress(v), nil
}

// parseAddresses reads a comma separated list of addresses.
func parseAddresses(lookup func(string) string, key string) ([]common.Address, error) {
	v := lookup(key)
	if v == "" {
		return nil, nil
	}

	var addrs []common.Address
	for _, s := range strings.Split(v, ",") {
		s = strings.TrimSpace(s)
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid %s: %q is not an address", key, s)
		}
		addrs = append(addrs, common.HexToAddress(s))
	}

	return addrs, nil
}
