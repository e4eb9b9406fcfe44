// internal/core/domain/summary.go
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DeviceRecord is a raw per-device mapping as returned by the directory
// service. Field names vary across directory versions, so classification
// probes a list of candidate keys rather than a fixed schema.
type DeviceRecord map[string]any

func (r DeviceRecord) str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// Ownership classes produced by InferOwner
const (
	OwnerCompany  = "company"
	OwnerPersonal = "personal"
	OwnerUnknown  = "unknown"
)

// ownerFields are probed in order; the first populated one wins.
var ownerFields = []string{"ownerType", "deviceOwnership", "ownership", "managedDeviceOwnerType"}

// InferOwner classifies a directory device record as company, personal or
// unknown. Layered heuristic: explicit ownership field first, then an
// assigned user principal (personal), then a recognized management-agent
// signal (company).
func InferOwner(rec DeviceRecord) string {
	for _, f := range ownerFields {
		v := strings.ToLower(strings.TrimSpace(rec.str(f)))
		if v == "" {
			continue
		}
		switch v {
		case "company", "corporate", "companyowned", "company_owned":
			return OwnerCompany
		case "personal", "personalowned", "personal_owned", "user":
			return OwnerPersonal
		}
		if strings.Contains(v, "company") {
			return OwnerCompany
		}
		if strings.Contains(v, "personal") || strings.Contains(v, "user") {
			return OwnerPersonal
		}
	}
	if rec.str("userPrincipalName") != "" {
		return OwnerPersonal
	}
	if agent := rec.str("managementAgent"); strings.Contains(strings.ToLower(agent), "microsoft") {
		return OwnerCompany
	}
	return OwnerUnknown
}

// DeviceSummary is the aggregate produced by one pass over the directory's
// device population. Pure data, no references back to the source records.
type DeviceSummary struct {
	Total        int            `json:"total"`
	Owners       map[string]int `json:"owners"`
	Compliance   map[string]int `json:"compliance"`
	ByOS         map[string]int `json:"by_os"`
	ByOSVersion  map[string]int `json:"by_os_version"`
	Corporate    int            `json:"corporate"`
	Personal     int            `json:"personal"`
	Compliant    int            `json:"compliant"`
	Noncompliant int            `json:"noncompliant"`
}

// Summarize aggregates a device population into ownership, compliance and
// OS breakdowns. Idempotent and side effect free.
func Summarize(devices []DeviceRecord) DeviceSummary {
	s := DeviceSummary{
		Total:       len(devices),
		Owners:      map[string]int{},
		Compliance:  map[string]int{},
		ByOS:        map[string]int{},
		ByOSVersion: map[string]int{},
	}
	for _, d := range devices {
		s.Owners[InferOwner(d)]++

		state := d.str("complianceState")
		if state == "" {
			state = "unknown"
		}
		s.Compliance[strings.ToLower(state)]++

		osName := strings.ToLower(d.str("operatingSystem"))
		if osName == "" {
			osName = "unknown"
		}
		s.ByOS[osName]++

		osVersion := strings.ToLower(d.str("osVersion"))
		if osVersion == "" {
			osVersion = "unknown"
		}
		s.ByOSVersion[osName+" "+osVersion]++
	}
	s.Corporate = s.Owners[OwnerCompany]
	s.Personal = s.Owners[OwnerPersonal]
	s.Compliant = s.Compliance["compliant"]
	s.Noncompliant = s.Compliance["noncompliant"]
	return s
}

// RawSampleSize bounds how many source records a snapshot retains for debugging
const RawSampleSize = 5

// DeviceSnapshot is an immutable point-in-time record of the directory's
// device population, produced by the reconciliation bridge. Written once,
// never merged or updated.
type DeviceSnapshot struct {
	ID           uuid.UUID      `json:"id"`
	Timestamp    time.Time      `json:"timestamp"`
	Total        int            `json:"total"`
	Corporate    int            `json:"corporate"`
	Personal     int            `json:"personal"`
	Compliant    int            `json:"compliant"`
	Noncompliant int            `json:"noncompliant"`
	ByOS         map[string]int `json:"by_os"`
	ByOSVersion  map[string]int `json:"by_os_version"`
	RawSample    map[string]any `json:"raw_sample,omitempty"`
}

// NewSnapshot builds a snapshot from a summary plus a bounded sample of the
// source records.
func NewSnapshot(summary DeviceSummary, devices []DeviceRecord) *DeviceSnapshot {
	n := len(devices)
	if n > RawSampleSize {
		n = RawSampleSize
	}
	examples := make([]DeviceRecord, n)
	copy(examples, devices[:n])

	return &DeviceSnapshot{
		ID:           uuid.New(),
		Timestamp:    time.Now().UTC(),
		Total:        summary.Total,
		Corporate:    summary.Corporate,
		Personal:     summary.Personal,
		Compliant:    summary.Compliant,
		Noncompliant: summary.Noncompliant,
		ByOS:         summary.ByOS,
		ByOSVersion:  summary.ByOSVersion,
		RawSample:    map[string]any{"count": n, "examples": examples},
	}
}

// DirectoryUser is the simplified directory user projection served by the API
type DirectoryUser struct {
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	UserPrincipalName string `json:"userPrincipalName"`
}
