package controller

import (
	"github.com/smartcontractkit/timelock/types"
)

// Interface identifiers reported by SupportsInterface.
var (
	IERC165ID          = types.Selector{0x01, 0xff, 0xc9, 0xa7}
	IAccessControlID   = types.Selector{0x79, 0x65, 0xdb, 0x0b}
	IERC721ReceiverID  = types.Selector{0x15, 0x0b, 0x7a, 0x02}
	IERC1155ReceiverID = types.Selector{0x4e, 0x23, 0x12, 0xe0}
)

// SupportsInterface reports whether the controller implements the interface with the given id.
func (c *Controller) SupportsInterface(id types.Selector) bool {
	switch id {
	case IERC165ID, IAccessControlID, IERC721ReceiverID, IERC1155ReceiverID:
		return true
	default:
		return false
	}
}

// OnERC721Received accepts every token transfer to the controller.
func (c *Controller) OnERC721Received() types.Selector {
	return IERC721ReceiverID
}

// OnERC1155Received accepts every token transfer to the controller.
func (c *Controller) OnERC1155Received() types.Selector {
	return IERC1155ReceiverID
}
