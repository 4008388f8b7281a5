package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// APIResponse is the one envelope every endpoint speaks:
// {"success":true,"data":...} or {"success":false,"error":"..."}
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Helper functions for consistent response handling

// SendErrorResponse sends a consistent error response with logging
func SendErrorResponse(w http.ResponseWriter, message string, statusCode int, logMessage string, err error) {
	// Log the detailed error
	if err != nil {
		log.Printf("%s: %v", logMessage, err)
	} else {
		log.Printf("%s", logMessage)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := APIResponse{
		Success: false,
		Error:   message,
	}

	if encodeErr := json.NewEncoder(w).Encode(response); encodeErr != nil {
		log.Printf("Failed to encode error response: %v", encodeErr)
	}
}

// SendSuccessResponse sends a consistent success response
func SendSuccessResponse(w http.ResponseWriter, data interface{}) {
	sendSuccess(w, http.StatusOK, data)
}

// SendCreatedResponse sends a consistent response for created resources
func SendCreatedResponse(w http.ResponseWriter, data interface{}) {
	sendSuccess(w, http.StatusCreated, data)
}

// SendAcceptedResponse is used when work continues in the background
func SendAcceptedResponse(w http.ResponseWriter, data interface{}) {
	sendSuccess(w, http.StatusAccepted, data)
}

func sendSuccess(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := APIResponse{
		Success: true,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode success response: %v", err)
	}
}

// ValidateJSONBody validates and decodes JSON request body
func ValidateJSONBody(r *http.Request, dest interface{}) error {
	if r.Body == nil {
		return &ValidationError{Message: "Request body is required"}
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields() // Strict validation

	if err := decoder.Decode(dest); err != nil {
		return &ValidationError{Message: "Invalid JSON format: " + err.Error()}
	}

	return nil
}

// ValidationError represents validation errors
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
