package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. In-process publishers hand over the
// typed struct directly; payloads read back from a journal or database arrive
// as generic maps and are converted through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	if input == nil {
		return result, nil
	}
	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf(ErrMsgDecodePayloadFormat, result, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf(ErrMsgDecodePayloadFormat, result, err)
	}
	return result, nil
}
