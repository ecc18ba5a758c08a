package mapping

import (
	"github.com/retailcore/cashdesk/internal/core/domain"
	"github.com/retailcore/cashdesk/internal/models"
)

// ToModelShift converts a domain shift to its model representation.
func ToModelShift(d domain.Shift) models.Shift {
	return models.Shift{
		ShiftID:        d.ShiftID,
		BranchID:       d.BranchID,
		OpenedByUserID: d.OpenedByUserID,
		ClosedByUserID: d.ClosedByUserID,
		Status:         models.ShiftStatus(d.Status),
		OpeningBalance: d.OpeningBalance,
		FixedFloat:     d.FixedFloat,
		OpenedAt:       d.OpenedAt,
		OpeningComment: d.OpeningComment,
		ClosedAt:       d.ClosedAt,
		ClosingComment: d.ClosingComment,
		ClosingBalance: d.ClosingBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShift converts a model shift to its domain representation.
func ToDomainShift(m models.Shift) domain.Shift {
	return domain.Shift{
		ShiftID:        m.ShiftID,
		BranchID:       m.BranchID,
		OpenedByUserID: m.OpenedByUserID,
		ClosedByUserID: m.ClosedByUserID,
		Status:         domain.ShiftStatus(m.Status),
		OpeningBalance: m.OpeningBalance,
		FixedFloat:     m.FixedFloat,
		OpenedAt:       m.OpenedAt,
		OpeningComment: m.OpeningComment,
		ClosedAt:       m.ClosedAt,
		ClosingComment: m.ClosingComment,
		ClosingBalance: m.ClosingBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
