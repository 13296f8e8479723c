// internal/service/receipt_subscriber.go
package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/antohakim/gymtrack-backend/internal/client"
	"github.com/antohakim/gymtrack-backend/internal/queue"
	"github.com/antohakim/gymtrack-backend/internal/repository"
)

// StartReceiptSubscriber wires the receipt pipeline onto the queue:
// load the receipt and its billing, render the text, send it and record
// the outcome. A returned error triggers the queue's retry.
func StartReceiptSubscriber(q queue.Queue, receipts repository.ReceiptRepositoryInterface, billings repository.BillingRepositoryInterface, customers client.CustomerLookup) {
	go func() {
		err := q.Subscribe(ReceiptTopic, func(payload any) error {
			receiptID, ok := payload.(int)
			if !ok {
				log.Println("⚠️ Invalid payload type, expected int")
				return nil
			}

			log.Println("📩 Processing queued receipt ID:", receiptID)

			receipt, err := receipts.GetByID(receiptID)
			if err != nil {
				log.Println("⚠️ Failed to fetch receipt:", err)
				return err
			}

			billing, err := billings.GetByID(receipt.BillingID)
			if err != nil {
				log.Println("⚠️ Failed to fetch billing for receipt:", err)
				return err
			}

			customerName := billing.CustomerName
			if customerName == "" && customers != nil {
				if c, err := customers.GetByID(context.Background(), billing.CustomerID); err == nil {
					customerName = c.Name
				}
			}

			rendered := RenderReceipt(billing, customerName)
			if err := receipts.UpdateContent(receiptID, rendered); err != nil {
				log.Println("⚠️ Failed to store rendered receipt:", err)
				return err
			}

			if err := MockSender(rendered); err != nil {
				log.Println("⚠️ Failed to send receipt:", err)
				_ = receipts.UpdateStatus(receiptID, "failed", err.Error())
				return err
			}

			if err := receipts.UpdateStatus(receiptID, "sent", ""); err != nil {
				log.Println("⚠️ Failed to update receipt status:", err)
				return err
			}

			log.Println("✅ Receipt processed successfully:", receiptID)
			return nil
		})

		if err != nil {
			log.Println("⚠️ Failed to start subscriber for", ReceiptTopic, ":", err)
		}
	}()
}

// MockSender simulates delivery with 90% success
// TODO: replace with the real email/SMS gateway once one is picked
func MockSender(payload any) error {
	if rand.Float64() < 0.9 {
		return nil
	}
	return fmt.Errorf("mock sending failed")
}
