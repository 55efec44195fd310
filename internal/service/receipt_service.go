package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/email"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
)

const receiptTimeLayout = "Jan 2, 2006 15:04 MST"

// ReceiptService renders payment receipts and mails them to the buyer.
type ReceiptService interface {
	Render(r entity.Receipt) (subject, bodyHTML, bodyText string)
	Deliver(ctx context.Context, r entity.Receipt) error
}

type receiptService struct {
	sender email.EmailSender
	log    logger.Logger
}

func NewReceiptService(sender email.EmailSender, log logger.Logger) ReceiptService {
	return &receiptService{sender: sender, log: log}
}

func (s *receiptService) Render(r entity.Receipt) (string, string, string) {
	subject := fmt.Sprintf("Your receipt for %s", r.ListingTitle)

	var text strings.Builder
	fmt.Fprintf(&text, "Transaction ID: %s\n", r.TransactionID)
	fmt.Fprintf(&text, "Item: %s (#%d)\n", r.ListingTitle, r.ListingID)
	if r.ConversationID != 0 {
		fmt.Fprintf(&text, "Conversation: %d\n", r.ConversationID)
	}
	fmt.Fprintf(&text, "Amount: %s\n", r.Amount)
	fmt.Fprintf(&text, "Paid with: %s\n", r.PaymentMethod)
	fmt.Fprintf(&text, "Paid at: %s\n", r.PaidAt.Format(receiptTimeLayout))
	fmt.Fprintf(&text, "\nThank you for your purchase, %s!\n", r.BuyerName)

	var body strings.Builder
	body.WriteString("<h2>Payment receipt</h2><table>")
	row := func(k, v string) {
		fmt.Fprintf(&body, "<tr><td><b>%s</b></td><td>%s</td></tr>", k, html.EscapeString(v))
	}
	row("Transaction ID", r.TransactionID)
	row("Item", r.ListingTitle)
	row("Amount", r.Amount)
	row("Paid with", r.PaymentMethod)
	row("Paid at", r.PaidAt.Format(receiptTimeLayout))
	body.WriteString("</table>")
	fmt.Fprintf(&body, "<p>Thank you for your purchase, %s!</p>", html.EscapeString(r.BuyerName))

	return subject, body.String(), text.String()
}

func (s *receiptService) Deliver(ctx context.Context, r entity.Receipt) error {
	if r.BuyerEmail == "" {
		return fmt.Errorf("%w: receipt %s has no buyer email", entity.ErrInvalidInput, r.TransactionID)
	}
	subject, bodyHTML, bodyText := s.Render(r)
	if err := s.sender.Send(ctx, []string{r.BuyerEmail}, subject, bodyHTML, bodyText); err != nil {
		s.log.Errorf("Failed to send receipt %s to %s: %v", r.TransactionID, r.BuyerEmail, err)
		return fmt.Errorf("failed to send receipt: %w", err)
	}
	s.log.Infof("Receipt %s sent to %s", r.TransactionID, r.BuyerEmail)
	return nil
}
