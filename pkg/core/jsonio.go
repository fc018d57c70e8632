package core

import (
	"encoding/json"
	"io"
)

// MarshalResult pretty-prints an audit result as JSON for humans or pipelines.
func MarshalResult(w io.Writer, res Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// UnmarshalResult decodes a result JSON, useful for ingestion tests.
func UnmarshalResult(r io.Reader) (Result, error) {
	var res Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return Result{}, err
	}
	return res, nil
}
