// Command smoke exercises a running server end to end: it logs in as the
// admin, sends a parcel notification to a resident, logs in as that
// resident, checks the unread count, responds "coming", and finally
// verifies the response is visible on the admin's sent list.
//
// It is a deployment check, not a test suite; any mismatch exits non-zero.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/society360/backend/internal/apiclient"
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "server base URL")
	adminUser := flag.String("admin-user", "watchman", "admin username")
	adminPass := flag.String("admin-pass", "watchman123", "admin password")
	residentUser := flag.String("resident-user", "john_doe", "resident username")
	residentPass := flag.String("resident-pass", "password123", "resident password")
	flag.Parse()

	if err := run(*baseURL, *adminUser, *adminPass, *residentUser, *residentPass); err != nil {
		fmt.Fprintf(os.Stderr, "smoke check failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("smoke check passed")
}

func run(baseURL, adminUser, adminPass, residentUser, residentPass string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// separate clients so the admin token survives the resident login
	admin, err := apiclient.NewClient(baseURL, 10*time.Second)
	if err != nil {
		return err
	}
	resident, err := apiclient.NewClient(baseURL, 10*time.Second)
	if err != nil {
		return err
	}

	if _, err := admin.Login(ctx, adminUser, adminPass); err != nil {
		return fmt.Errorf("admin login: %w", err)
	}

	recipientID, err := findResident(ctx, admin, residentUser)
	if err != nil {
		return err
	}

	sent, err := admin.SendNotification(ctx, apiclient.SendNotificationParams{
		RecipientID: recipientID,
		Type:        "parcel",
		Title:       "Parcel at the gate",
		Message:     "A parcel arrived for you at the security desk.",
	})
	if err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}
	if sent.IsRead || sent.HasResponse {
		return fmt.Errorf("fresh notification %s is not unread", sent.ID)
	}

	if _, err := resident.Login(ctx, residentUser, residentPass); err != nil {
		return fmt.Errorf("resident login: %w", err)
	}

	if err := checkUnread(ctx, resident, sent.ID); err != nil {
		return err
	}

	responded, err := resident.Respond(ctx, sent.ID, "coming", "On my way")
	if err != nil {
		return fmt.Errorf("responding: %w", err)
	}
	if !responded.HasResponse || !responded.IsRead {
		return fmt.Errorf("response was not recorded on notification %s", sent.ID)
	}

	return checkSentList(ctx, admin, sent.ID)
}

func findResident(ctx context.Context, admin *apiclient.Client, username string) (string, error) {
	residents, err := admin.ListResidents(ctx)
	if err != nil {
		return "", fmt.Errorf("listing residents: %w", err)
	}

	for _, r := range residents {
		if r.Username == username {
			return r.ID, nil
		}
	}
	return "", fmt.Errorf("resident %q not found; run the seed tool first", username)
}

func checkUnread(ctx context.Context, resident *apiclient.Client, notificationID string) error {
	page, err := resident.MyNotifications(ctx, 0, 0)
	if err != nil {
		return fmt.Errorf("listing notifications: %w", err)
	}

	if page.Pagination.UnreadCount == nil || *page.Pagination.UnreadCount < 1 {
		return fmt.Errorf("expected at least one unread notification")
	}

	for _, n := range page.Notifications {
		if n.ID == notificationID {
			return nil
		}
	}
	return fmt.Errorf("notification %s not visible to recipient", notificationID)
}

func checkSentList(ctx context.Context, admin *apiclient.Client, notificationID string) error {
	page, err := admin.SentNotifications(ctx, 0, 0)
	if err != nil {
		return fmt.Errorf("listing sent notifications: %w", err)
	}

	for _, n := range page.Notifications {
		if n.ID == notificationID {
			if n.Response == nil || *n.Response != "coming" {
				return fmt.Errorf("response not visible on sent list for %s", notificationID)
			}
			return nil
		}
	}
	return fmt.Errorf("notification %s not on the sender's sent list", notificationID)
}
