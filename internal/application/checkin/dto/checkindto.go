package dto

import (
	"time"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/checkin"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/member"
)

// CredentialDTO is the minted check-in credential returned to the caller.
type CredentialDTO struct {
	Credential       string    `json:"credential"`
	ExpiresAt        time.Time `json:"expires_at"`
	ExpiresInSeconds int       `json:"expires_in_seconds"`
}

// MemberSummaryDTO is the sanitized member snapshot shown on kiosk screens.
type MemberSummaryDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Photo     string `json:"photo,omitempty"`
	Rank      string `json:"rank,omitempty"`
}

// MemberSummaryFromDomain converts a domain summary.
func MemberSummaryFromDomain(s member.Summary) *MemberSummaryDTO {
	return &MemberSummaryDTO{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Photo:     s.Photo,
		Rank:      s.Rank,
	}
}

// ValidationResultDTO is the admission decision returned to kiosks.
// CheckInID is set only when the attempt produced a record.
type ValidationResultDTO struct {
	Valid     bool              `json:"valid"`
	Status    string            `json:"status"`
	Reason    string            `json:"reason,omitempty"`
	Member    *MemberSummaryDTO `json:"member,omitempty"`
	CheckInID *uint             `json:"check_in_id,omitempty"`
	Sound     bool              `json:"sound"`
}

// CheckInDTO is one admission record in history listings.
type CheckInDTO struct {
	ID         uint      `json:"id"`
	MemberID   *uint     `json:"member_id,omitempty"`
	TerminalID *uint     `json:"terminal_id,omitempty"`
	Method     string    `json:"method"`
	Status     string    `json:"status"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CheckInFromDomain converts an admission record.
func CheckInFromDomain(c *checkin.CheckIn) CheckInDTO {
	return CheckInDTO{
		ID:         c.ID(),
		MemberID:   c.MemberID(),
		TerminalID: c.TerminalID(),
		Method:     string(c.Method()),
		Status:     string(c.Status()),
		Note:       c.Note(),
		CreatedAt:  c.CreatedAt(),
	}
}

// HistoryDTO is a page of admission records with per-status counts over
// the filtered set.
type HistoryDTO struct {
	Items        []CheckInDTO     `json:"items"`
	Total        int64            `json:"total"`
	Page         int              `json:"page"`
	PageSize     int              `json:"page_size"`
	TotalPages   int              `json:"total_pages"`
	StatusCounts map[string]int64 `json:"status_counts"`
}
