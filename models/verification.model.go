package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AadhaarVerification is the append-only audit record for a successful
// vendor verification. Created only when the vendor reports status VALID;
// never updated afterwards.
type AadhaarVerification struct {
	gorm.Model
	EmployeeID  uint           `gorm:"index;not null" json:"employeeId"`
	RefID       string         `gorm:"index;default:''" json:"refId"`
	Status      string         `gorm:"default:''" json:"status"`
	Name        string         `gorm:"default:''" json:"name"`
	DOB         string         `gorm:"default:''" json:"dob"`
	YearOfBirth string         `gorm:"default:''" json:"yearOfBirth"`
	Gender      string         `gorm:"default:''" json:"gender"`
	CareOf      string         `gorm:"default:''" json:"careOf"`
	Address     string         `gorm:"default:''" json:"address"`
	SplitAddr   SplitAddress   `gorm:"embedded;embeddedPrefix:addr_" json:"splitAddress"`
	MobileHash  string         `gorm:"default:''" json:"mobileHash"`
	RawPayload  datatypes.JSON `json:"-"`
}

// SplitAddress mirrors the vendor's decomposed address block.
type SplitAddress struct {
	Country     string `gorm:"default:''" json:"country"`
	District    string `gorm:"default:''" json:"dist"`
	House       string `gorm:"default:''" json:"house"`
	Landmark    string `gorm:"default:''" json:"landmark"`
	Pincode     string `gorm:"default:''" json:"pincode"`
	PostOffice  string `gorm:"default:''" json:"po"`
	State       string `gorm:"default:''" json:"state"`
	Street      string `gorm:"default:''" json:"street"`
	Subdistrict string `gorm:"default:''" json:"subdist"`
	Vtc         string `gorm:"default:''" json:"vtc"`
}
