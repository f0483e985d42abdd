// Package metrics pulls the curl timing record out of captured output.
package metrics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hbagdi/httpstat/pkg/model"
	"github.com/tidwall/gjson"
)

var (
	ErrMissingPayload = errors.New("no timing record in output")
	ErrMetricsParse   = errors.New("malformed timing record")
)

// Locate finds the timing record in blob: the text from the last '{'
// through the last '}'. It does not parse; the record is expected to be
// the final object curl writes and to contain no nested braces.
func Locate(blob string) (start, end int, err error) {
	start = strings.LastIndexByte(blob, '{')
	end = strings.LastIndexByte(blob, '}')
	if start < 0 || end < 0 || end < start {
		return 0, 0, ErrMissingPayload
	}
	return start, end, nil
}

// Extract parses the timing record embedded in blob. Fields missing from
// the record, or holding a non-numeric value, read as zero.
func Extract(blob string) (model.RawMetrics, error) {
	start, end, err := Locate(blob)
	if err != nil {
		return model.RawMetrics{}, err
	}
	payload := blob[start : end+1]
	if !gjson.Valid(payload) {
		return model.RawMetrics{}, fmt.Errorf("%w: invalid JSON", ErrMetricsParse)
	}
	record := gjson.Parse(payload)
	if !record.IsObject() {
		return model.RawMetrics{}, fmt.Errorf("%w: not an object", ErrMetricsParse)
	}

	return model.RawMetrics{
		NameLookup:    number(record, "time_namelookup"),
		Connect:       number(record, "time_connect"),
		AppConnect:    number(record, "time_appconnect"),
		PreTransfer:   number(record, "time_pretransfer"),
		Redirect:      number(record, "time_redirect"),
		StartTransfer: number(record, "time_starttransfer"),
		Total:         number(record, "time_total"),
		SpeedDownload: number(record, "speed_download"),
		SpeedUpload:   number(record, "speed_upload"),
		RemoteIP:      text(record, "remote_ip"),
		RemotePort:    text(record, "remote_port"),
		LocalIP:       text(record, "local_ip"),
		LocalPort:     text(record, "local_port"),
	}, nil
}

func number(record gjson.Result, field string) float64 {
	res := record.Get(field)
	if res.Type != gjson.Number {
		return 0
	}
	return res.Num
}

// text reads a string field; curl quotes ports in the record, but a bare
// number is accepted too.
func text(record gjson.Result, field string) string {
	res := record.Get(field)
	switch res.Type {
	case gjson.String:
		return res.Str
	case gjson.Number:
		return res.Raw
	default:
		return ""
	}
}
