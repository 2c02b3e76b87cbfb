package session

import (
	"encoding/json"
	"fmt"
)

const scheduledViaTag = "ai_dispatcher"

// AppointmentRequest is the validated argument set of one schedule_appointment
// function call.
type AppointmentRequest struct {
	CustomerName  string
	CustomerPhone string
	ServiceType   string
	PreferredDate string
	Description   string
}

type rawAppointmentArgs struct {
	CustomerName  any `json:"customer_name"`
	CustomerPhone any `json:"customer_phone"`
	ServiceType   any `json:"service_type"`
	PreferredDate any `json:"preferred_date"`
	Description   any `json:"description"`
}

// parseAppointmentRequest decodes and validates the JSON argument string of a
// function call. Required fields must be present, non-empty strings; the model
// occasionally emits numbers or nulls there, which counts as a failed call.
func parseAppointmentRequest(arguments string) (AppointmentRequest, error) {
	var raw rawAppointmentArgs
	if err := json.Unmarshal([]byte(arguments), &raw); err != nil {
		return AppointmentRequest{}, fmt.Errorf("arguments are not valid JSON: %w", err)
	}

	req := AppointmentRequest{
		PreferredDate: optionalString(raw.PreferredDate),
		Description:   optionalString(raw.Description),
	}
	var err error
	if req.CustomerName, err = requiredString("customer_name", raw.CustomerName); err != nil {
		return AppointmentRequest{}, err
	}
	if req.CustomerPhone, err = requiredString("customer_phone", raw.CustomerPhone); err != nil {
		return AppointmentRequest{}, err
	}
	if req.ServiceType, err = requiredString("service_type", raw.ServiceType); err != nil {
		return AppointmentRequest{}, err
	}
	return req, nil
}

func requiredString(name string, v any) (string, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%s is required and must be a non-empty string", name)
	}
	return s, nil
}

func optionalString(v any) string {
	s, _ := v.(string)
	return s
}

// appointmentData is the persisted appointment_data JSON: the submitted
// request plus the company it was booked for and how it was booked.
func appointmentData(req AppointmentRequest, companyName string) json.RawMessage {
	data, _ := json.Marshal(map[string]string{
		"customer_name":  req.CustomerName,
		"customer_phone": req.CustomerPhone,
		"service_type":   req.ServiceType,
		"preferred_date": req.PreferredDate,
		"description":    req.Description,
		"company_name":   companyName,
		"scheduled_via":  scheduledViaTag,
	})
	return data
}
