package interactionlog

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
	"github.com/brightbeginnings/daycare-voice-service/pkg/logger"
)

const (
	appendRange    = "A:H"
	analyticsTitle = "Analytics"
)

// SheetsSink appends one row per turn to a Google spreadsheet, the durable
// human-browsable log store.
type SheetsSink struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetsSink creates a sink authenticated with a service-account
// credentials file.
func NewSheetsSink(ctx context.Context, credentialsFile, spreadsheetID string) (*SheetsSink, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &SheetsSink{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Append writes the entry as one row to the first sheet.
func (s *SheetsSink) Append(ctx context.Context, entry domain.InteractionEntry) error {
	row := []interface{}{
		entry.Timestamp.Format("1/2/2006, 3:04:05 PM"),
		entry.Name,
		entry.Phone,
		entry.Message,
		string(entry.Intent),
		string(entry.Language),
		string(entry.Channel),
		entry.Reply,
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, appendRange, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets append: %w", err)
	}
	return nil
}

// EnsureAnalyticsSheet creates the Analytics tab with summary formulas over
// the primary sheet if it does not exist yet. Best-effort startup helper.
func (s *SheetsSink) EnsureAnalyticsSheet(ctx context.Context) error {
	meta, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get spreadsheet: %w", err)
	}

	primary := "Sheet1"
	if len(meta.Sheets) > 0 && meta.Sheets[0].Properties != nil && meta.Sheets[0].Properties.Title != "" {
		primary = meta.Sheets[0].Properties.Title
	}
	for _, sheet := range meta.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == analyticsTitle {
			logger.Base().Info("analytics sheet exists", zap.String("primary_sheet", primary))
			return nil
		}
	}

	_, err = s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title:          analyticsTitle,
					GridProperties: &sheets.GridProperties{RowCount: 200, ColumnCount: 8},
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("add analytics sheet: %w", err)
	}

	summary := [][]interface{}{
		{"Metric", "Value"},
		{"Total interactions", fmt.Sprintf("=COUNTA('%s'!A2:A)", primary)},
		{"Voice interactions", fmt.Sprintf("=COUNTIF('%s'!G2:G,\"voice\")", primary)},
		{"WhatsApp interactions", fmt.Sprintf("=COUNTIF('%s'!G2:G,\"whatsapp\")", primary)},
		{"Tours", fmt.Sprintf("=COUNTIF('%s'!E2:E,\"tour\")", primary)},
		{"Fees", fmt.Sprintf("=COUNTIF('%s'!E2:E,\"fees\")", primary)},
		{"Hours", fmt.Sprintf("=COUNTIF('%s'!E2:E,\"hours\")", primary)},
		{"Urgent/Manager", fmt.Sprintf("=COUNTIF('%s'!E2:E,\"urgent\")+COUNTIF('%s'!E2:E,\"manager\")", primary, primary)},
		{"General", fmt.Sprintf("=COUNTIF('%s'!E2:E,\"general\")", primary)},
		{"English", fmt.Sprintf("=COUNTIF('%s'!F2:F,\"English\")", primary)},
		{"French", fmt.Sprintf("=COUNTIF('%s'!F2:F,\"French\")", primary)},
	}
	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, "Analytics!A1:B12", &sheets.ValueRange{Values: summary}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("write analytics formulas: %w", err)
	}

	logger.Base().Info("analytics sheet created", zap.String("primary_sheet", primary))
	return nil
}
