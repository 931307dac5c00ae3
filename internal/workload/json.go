package workload

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/himanshuyadav71/schedulicious-process-flow/internal/requests"
)

func encodeJSON(w io.Writer, req requests.ScheduleRequest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(req); err != nil {
		return fmt.Errorf("encode workload: %w", err)
	}
	return nil
}
