package domain

import "time"

// AssetStatus is the allocation state of a company asset.
type AssetStatus string

const (
	AssetAvailable      AssetStatus = "available"
	AssetAssignedToTech AssetStatus = "assigned_to_tech"
	AssetOnLoanToClient AssetStatus = "on_loan_to_client"
	AssetMaintenance    AssetStatus = "maintenance"
)

// AssetType is the inventory category of a company asset.
type AssetType string

const (
	AssetLaptop       AssetType = "Laptop"
	AssetDesktop      AssetType = "Desktop"
	AssetMonitor      AssetType = "Monitor"
	AssetNetworkEquip AssetType = "Network_Equipment"
	AssetTool         AssetType = "Tool"
	AssetOther        AssetType = "Other"
)

// Asset is company-owned equipment tracked in inventory.
type Asset struct {
	ID              string      `json:"id" bson:"_id,omitempty"`
	Tag             string      `json:"asset_tag" bson:"asset_tag"`
	AssetType       AssetType   `json:"asset_type" bson:"asset_type"`
	Description     string      `json:"description" bson:"description"`
	Location        string      `json:"location" bson:"location"`
	Status          AssetStatus `json:"status" bson:"status"`
	AssignedTo      string      `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	LastMaintenance *time.Time  `json:"last_maintenance,omitempty" bson:"last_maintenance,omitempty"`
}

// AssetRequestType classifies what the requester wants done with an asset.
type AssetRequestType string

const (
	AssetRequestAssignment   AssetRequestType = "assignment"
	AssetRequestModification AssetRequestType = "modification"
	AssetRequestMaintenance  AssetRequestType = "maintenance"
)

// AssetRequestStatus is the review state of an asset request.
type AssetRequestStatus string

const (
	AssetRequestPending  AssetRequestStatus = "pending"
	AssetRequestApproved AssetRequestStatus = "approved"
	AssetRequestRejected AssetRequestStatus = "rejected"
)

// AssetRequest is a user's petition for an asset assignment, change, or
// maintenance, reviewed by an administrator.
type AssetRequest struct {
	ID          string             `json:"id" bson:"_id,omitempty"`
	AssetID     string             `json:"asset_id,omitempty" bson:"asset_id,omitempty"`
	RequestedBy string             `json:"requested_by" bson:"requested_by"`
	RequestType AssetRequestType   `json:"request_type" bson:"request_type"`
	Reason      string             `json:"reason" bson:"reason"`
	Status      AssetRequestStatus `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}
