package domain

import (
	"strconv"
	"strings"
	"time"
)

// Core domain models used by the pipeline and its adapters. API payloads are
// shaped in the http adapter; keep these transport-agnostic.

type DocumentType string

const (
	TypeInvoice  DocumentType = "invoice"
	TypeContract DocumentType = "contract"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusProcessing  Status = "processing"
	StatusNeedsReview Status = "needs-review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

// Terminal reports whether no transition may leave s.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusNeedsReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Field names produced by the extractor.
const (
	FieldInvoiceNumber  = "Invoice Number"
	FieldDate           = "Date"
	FieldAmount         = "Amount"
	FieldEmail          = "Email"
	FieldPhone          = "Phone"
	FieldVendor         = "Vendor"
	FieldContractNumber = "Contract Number"
	FieldParty1         = "Party 1"
	FieldParty2         = "Party 2"
	FieldCompany        = "Company"
	FieldEffectiveDate  = "Effective Date"
	FieldExpirationDate = "Expiration Date"
	FieldTerm           = "Term"
	FieldValue          = "Value"
)

type Document struct {
	ID              string
	Type            DocumentType
	RawText         string
	ExtractedFields map[string]string
	RiskScore       int
	Status          Status
	AutoApproved    bool
	WorkflowReason  string
	AppliedRules    []string
	ReviewedBy      *string
	ReviewedAt      *time.Time
	ReviewComments  *string
	RejectionReason *string
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Clone returns a deep copy so rule evaluation never sees later mutation.
func (d Document) Clone() Document {
	out := d
	if d.ExtractedFields != nil {
		out.ExtractedFields = make(map[string]string, len(d.ExtractedFields))
		for k, v := range d.ExtractedFields {
			out.ExtractedFields[k] = v
		}
	}
	if d.AppliedRules != nil {
		out.AppliedRules = append([]string(nil), d.AppliedRules...)
	}
	return out
}

// DocumentPatch carries the partial fields of an update. Nil members are left
// untouched by the store.
type DocumentPatch struct {
	Status          *Status
	AutoApproved    *bool
	WorkflowReason  *string
	ExtractedFields map[string]string
	RiskScore       *int
	AppliedRules    []string
	ReviewedBy      *string
	ReviewedAt      *time.Time
	ReviewComments  *string
	RejectionReason *string
}

// Apply writes the non-nil members of p onto d.
func (p DocumentPatch) Apply(d *Document) {
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.AutoApproved != nil {
		d.AutoApproved = *p.AutoApproved
	}
	if p.WorkflowReason != nil {
		d.WorkflowReason = *p.WorkflowReason
	}
	if p.ExtractedFields != nil {
		d.ExtractedFields = p.ExtractedFields
	}
	if p.RiskScore != nil {
		d.RiskScore = *p.RiskScore
	}
	if p.AppliedRules != nil {
		d.AppliedRules = p.AppliedRules
	}
	if p.ReviewedBy != nil {
		d.ReviewedBy = p.ReviewedBy
	}
	if p.ReviewedAt != nil {
		d.ReviewedAt = p.ReviewedAt
	}
	if p.ReviewComments != nil {
		d.ReviewComments = p.ReviewComments
	}
	if p.RejectionReason != nil {
		d.RejectionReason = p.RejectionReason
	}
}

type Decision struct {
	Status       Status   `json:"status"`
	AutoApproved bool     `json:"autoApproved"`
	Reason       string   `json:"reason"`
	AppliedRules []string `json:"appliedRules"`
}

type Actor struct {
	ID   string
	Name string
}

// SystemActor is recorded whenever no authenticated actor is available.
var SystemActor = Actor{ID: "system", Name: "System"}

// OrSystem returns a, or SystemActor when a carries no identity.
func (a Actor) OrSystem() Actor {
	if strings.TrimSpace(a.ID) == "" && strings.TrimSpace(a.Name) == "" {
		return SystemActor
	}
	if a.Name == "" {
		a.Name = a.ID
	}
	return a
}

// Audit actions.
const (
	ActionAutoApprove   = "auto_approve"
	ActionFlagForReview = "flag_for_review"
	ActionManualApprove = "manual_approve"
	ActionManualReject  = "manual_reject"
	ActionSubmit        = "submit"
	ActionSystemError   = "system_error"
)

type AuditEntry struct {
	ID         string
	Timestamp  time.Time
	ActorID    string
	ActorName  string
	Action     string
	DocumentID string
	Details    string
}

type Statistics struct {
	Total            int     `json:"total"`
	AutoApproved     int     `json:"autoApproved"`
	ManuallyReviewed int     `json:"manuallyReviewed"`
	Pending          int     `json:"pending"`
	Approved         int     `json:"approved"`
	Rejected         int     `json:"rejected"`
	AverageRiskScore float64 `json:"averageRiskScore"`
}

// ParseAmount converts a display amount such as "$12,000.50" into a number.
// The second return is false when nothing numeric remains.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// CanonicalAmount resolves the monetary value of a field set, preferring
// Amount over Value. Missing or unparseable amounts resolve to zero.
func CanonicalAmount(fields map[string]string) float64 {
	raw, ok := fields[FieldAmount]
	if !ok {
		raw, ok = fields[FieldValue]
	}
	if !ok {
		return 0
	}
	v, ok := ParseAmount(raw)
	if !ok {
		return 0
	}
	return v
}
