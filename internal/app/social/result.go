package social

import (
	"encoding/json"
	"fmt"

	"biblenow/internal/app/db"
)

// procedureStatus is the envelope procedures use to report business errors without raising.
type procedureStatus struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

// decodeResult unmarshals a procedure result into dst, turning {"success": false, "error": ...}
// into a *db.ProcedureError.
func decodeResult(procedure string, raw json.RawMessage, dst any) error {
	var status procedureStatus
	if err := json.Unmarshal(raw, &status); err == nil && status.Success != nil && !*status.Success {
		message := status.Error
		if message == "" {
			message = "The request could not be completed."
		}
		return &db.ProcedureError{Procedure: procedure, Message: message}
	}

	if dst == nil {
		return nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", procedure, err)
	}
	return nil
}
