package jobs

import (
	"context"
	"time"

	"openshelf-backend/internal/logger"
	"openshelf-backend/internal/utils"
)

// SendOverdueReminders emails every member holding an overdue loan. The
// loan itself is untouched: overdue is derived from the due date, and the
// late fee is only written when the book actually comes back.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()
		now := time.Now()

		loans, err := jr.store.LoanRepository.ListAllOverdue(ctx, now)
		if err != nil {
			logger.Error("Failed to list overdue loans", "error", err)
			return
		}

		sent := 0
		for _, loan := range loans {
			member, err := jr.store.MemberRepository.GetByID(ctx, loan.MemberID)
			if err != nil {
				logger.Error("Failed to load member for overdue reminder", "member_id", loan.MemberID, "error", err)
				continue
			}
			book, err := jr.store.BookRepository.GetByID(ctx, loan.BookID)
			if err != nil {
				logger.Error("Failed to load book for overdue reminder", "book_id", loan.BookID, "error", err)
				continue
			}

			accrued := utils.LateFeeCents(loan.DueDate, now)
			if err := jr.services.Email.SendOverdueReminder(ctx, member.Email, member.Name, book.Title, loan.DueDate, accrued); err != nil {
				logger.Error("Failed to send overdue reminder", "loan_id", loan.ID, "error", err)
				continue
			}
			sent++
			logger.Debug("Sent overdue reminder",
				"loan_id", loan.ID,
				"member_id", member.ID,
				"book_id", book.ID,
				"due_date", loan.DueDate,
				"accrued_fee_cents", accrued)
		}

		logger.Info("Overdue reminders sent", "overdue_loans", len(loans), "sent", sent)
	})
}
