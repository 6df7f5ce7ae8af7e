package models

// EventDetails maps an event name to its participant slots
// (slot key -> participant name). A registrant can enter several
// events, each with its own set of slots.
type EventDetails map[string]map[string]string

// Clone returns a deep copy so staged edits never touch the original maps.
func (d EventDetails) Clone() EventDetails {
	if d == nil {
		return nil
	}
	out := make(EventDetails, len(d))
	for event, participants := range d {
		slots := make(map[string]string, len(participants))
		for key, name := range participants {
			slots[key] = name
		}
		out[event] = slots
	}
	return out
}

// Registrant is one submitted event registration. Created by the public
// registration flow; the admin console only reads, updates and deletes.
type Registrant struct {
	ID            string       `json:"_id" db:"id"`
	Name          string       `json:"name" db:"name"`
	Phone         string       `json:"phone" db:"phone"`
	CollegeName   string       `json:"collegeName" db:"college_name"`
	Course        string       `json:"course" db:"course"`
	HodName       string       `json:"hodName" db:"hod_name"`
	HodPhone      string       `json:"hodPhone" db:"hod_phone"`
	TotalAmount   string       `json:"totalAmount" db:"total_amount"`
	TransactionID string       `json:"transactionId" db:"transaction_id"`
	EventDetails  EventDetails `json:"eventDetails" db:"event_details"`
}

// UpdateRegistrantRequest carries the admin-editable fields. Empty scalar
// fields and a nil EventDetails leave the stored values untouched; payment
// fields are never editable through this request.
type UpdateRegistrantRequest struct {
	ID           string       `json:"_id"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	CollegeName  string       `json:"collegeName"`
	Course       string       `json:"course"`
	EventDetails EventDetails `json:"eventDetails,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
