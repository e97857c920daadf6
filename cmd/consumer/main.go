package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
)

var (
	natsURL string
)

func init() {
	flag.StringVar(&natsURL, "nats", "nats://localhost:4222", "NATS server URL")
}

type employeePayload struct {
	ID             string `json:"id"`
	EmpID          string `json:"emp_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Designation    string `json:"designation"`
	Department     string `json:"department"`
	JoiningDate    string `json:"joining_date"`
	Location       string `json:"location"`
	EmploymentType string `json:"employment_type"`
	Status         string `json:"status"`
}

type employeeEvent struct {
	EventID       string           `json:"event_id"`
	EventType     string           `json:"event_type"`
	Timestamp     time.Time        `json:"timestamp"`
	Employee      *employeePayload `json:"employee,omitempty"`
	UpdatedFields []string         `json:"updated_fields,omitempty"`
	ImportedCount int              `json:"imported_count,omitempty"`
	RowErrors     []string         `json:"row_errors,omitempty"`
	AgreementID   string           `json:"agreement_id,omitempty"`
	LetterType    string           `json:"letter_type,omitempty"`
}

func main() {
	flag.Parse()

	nc, err := nats.Connect(natsURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer nc.Close()

	log.Printf("✓ Connected to NATS at %s", natsURL)
	log.Println()
	log.Println("Subscribing to event subjects:")
	log.Println("  - employees.v1.>")
	log.Println("  - agreements.v1.>")
	log.Println()

	handler := func(msg *nats.Msg) {
		var event employeeEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			log.Printf("✗ Error unmarshaling event from %s: %v", msg.Subject, err)
			return
		}
		printEvent(msg.Subject, &event)
	}

	if _, err := nc.Subscribe("employees.v1.>", handler); err != nil {
		log.Fatalf("Failed to subscribe to employee events: %v", err)
	}
	if _, err := nc.Subscribe("agreements.v1.>", handler); err != nil {
		log.Fatalf("Failed to subscribe to agreement events: %v", err)
	}

	log.Println("🎧 Listening for events...")
	log.Println("   Press Ctrl+C to exit")
	log.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println()
	log.Println("Shutting down consumer...")
}

func printEvent(subject string, event *employeeEvent) {
	log.Println("========================================")
	log.Printf("📨 %s Event", strings.ToUpper(event.EventType))
	log.Println("========================================")
	log.Printf("Subject:    %s", subject)
	log.Printf("Event ID:   %s", event.EventID)
	log.Printf("Timestamp:  %s", event.Timestamp.Format("2006-01-02 15:04:05"))

	if event.Employee != nil {
		emp := event.Employee
		log.Println()
		log.Println("Employee Data:")
		log.Printf("  ID:          %s", emp.ID)
		log.Printf("  Emp ID:      %s", emp.EmpID)
		log.Printf("  Name:        %s", emp.Name)
		log.Printf("  Email:       %s", emp.Email)
		if emp.Designation != "" {
			log.Printf("  Designation: %s", emp.Designation)
		}
		if emp.Department != "" {
			log.Printf("  Department:  %s", emp.Department)
		}
		if emp.Status != "" {
			log.Printf("  Status:      %s", emp.Status)
		}
	}

	if len(event.UpdatedFields) > 0 {
		log.Printf("  Updated Fields: %v", event.UpdatedFields)
	}

	if event.EventType == "imported" {
		log.Println()
		log.Printf("Imported Count: %d", event.ImportedCount)
		if len(event.RowErrors) > 0 {
			log.Println("Row Errors:")
			for _, rowErr := range event.RowErrors {
				log.Printf("  - %s", rowErr)
			}
		}
	}

	if event.AgreementID != "" {
		log.Println()
		log.Printf("Agreement ID: %s", event.AgreementID)
		log.Printf("Letter Type:  %s", event.LetterType)
	}

	log.Println("========================================")
	log.Println()
}
