package dto

import "time"

// LocationResponse mirrors a user's stored location block.
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
}

// ProfileResponse is the full user record minus the password hash.
type ProfileResponse struct {
	UserID       string           `json:"userid"`
	Email        string           `json:"email"`
	AadharCardNo string           `json:"aadharCardNo"`
	PhoneNo      string           `json:"phoneNo"`
	DisplayName  string           `json:"displayName"`
	Location     LocationResponse `json:"location"`
	Stats        StatsResponse    `json:"stats"`
	IsActive     bool             `json:"isActive"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// UpdateLocationRequest payload for PUT /api/users/location.
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
}
