package domain

import "time"

// DeviceStatus is the operational state of a managed device.
type DeviceStatus string

const (
	DeviceActive      DeviceStatus = "active"
	DeviceInRepair    DeviceStatus = "in_repair"
	DeviceRetired     DeviceStatus = "retired"
	DeviceMaintenance DeviceStatus = "maintenance"
)

// DeviceType is the hardware category of a device.
type DeviceType string

const (
	DevicePC      DeviceType = "PC"
	DeviceServer  DeviceType = "Server"
	DeviceNetwork DeviceType = "Network"
	DeviceCCTV    DeviceType = "CCTV"
	DevicePrinter DeviceType = "Printer"
	DeviceOther   DeviceType = "Other"
)

// Device is a piece of client-owned hardware under management.
type Device struct {
	ID             string       `json:"id" bson:"_id,omitempty"`
	ClientID       string       `json:"client_id" bson:"client_id"`
	DeviceCode     string       `json:"device_code" bson:"device_code"`
	DeviceType     DeviceType   `json:"device_type" bson:"device_type"`
	Manufacturer   string       `json:"manufacturer" bson:"manufacturer"`
	Model          string       `json:"model" bson:"model"`
	SerialNumber   string       `json:"serial_number" bson:"serial_number"`
	PurchaseDate   time.Time    `json:"purchase_date" bson:"purchase_date"`
	WarrantyExpiry time.Time    `json:"warranty_expiry" bson:"warranty_expiry"`
	Status         DeviceStatus `json:"status" bson:"status"`
	Location       string       `json:"location" bson:"location"`
	Notes          string       `json:"notes,omitempty" bson:"notes,omitempty"`
}
