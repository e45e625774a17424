package records

import (
	"fmt"
	"strings"

	"github.com/Sefbongo/DeviceInventorySystem/pkg/apperrors"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/metadata"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/models"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/roles"

	"go.uber.org/zap"
)

type RecordRepository interface {
	GetRecord(id int) (*models.InventoryRecord, error)
	PersistRecord(req models.RecordRequest, assetID string) (*models.InventoryRecord, error)
	UpdateRecord(id int, req models.RecordRequest) error
	SetCancelled(id int, cancelled bool) error
	CountRecords() (int, error)
	CountActiveBySerial(serial string) (int, error)
}

// RecordService owns the record lifecycle: create, edit, cancel, restore and
// bulk import.
type RecordService struct {
	repo RecordRepository
	log  *zap.Logger
}

func NewRecordService(repo RecordRepository, log *zap.Logger) *RecordService {
	return &RecordService{
		repo: repo,
		log:  log,
	}
}

// requiredFields lists every field that must be non-empty after trimming,
// in form order. Manufactured date is prefilled from the platform probe and
// was never required.
var requiredFields = []struct {
	label string
	value func(models.RecordRequest) string
}{
	{"TOOL OF TRADE", func(r models.RecordRequest) string { return r.AssetClass }},
	{"ASSET NAME", func(r models.RecordRequest) string { return r.AssetName }},
	{"DATE ACQUIRED", func(r models.RecordRequest) string { return r.DateAcquired }},
	{"BUSINESS UNIT", func(r models.RecordRequest) string { return r.BusinessUnit }},
	{"DEPARTMENT", func(r models.RecordRequest) string { return r.Department }},
	{"BRANCH", func(r models.RecordRequest) string { return r.Branch }},
	{"BRAND", func(r models.RecordRequest) string { return r.Brand }},
	{"ASSET DESCRIPTION", func(r models.RecordRequest) string { return r.Description }},
	{"SERIAL NUMBER", func(r models.RecordRequest) string { return r.SerialNumber }},
	{"CUSTODIAN", func(r models.RecordRequest) string { return r.Custodian }},
	{"ASSET STATUS", func(r models.RecordRequest) string { return r.DeviceStatus }},
}

// Create validates the request, rejects duplicate active serials and inserts
// the record. When req.AssetID is empty an id is generated from the current
// row count; a caller-supplied id (manual entry, import) is used as-is.
func (s *RecordService) Create(req models.RecordRequest) (*models.InventoryRecord, error) {
	req = normalize(req)

	if missing := missingFields(req); len(missing) > 0 {
		return nil, &apperrors.MissingFieldsError{Fields: missing}
	}

	active, err := s.repo.CountActiveBySerial(req.SerialNumber)
	if err != nil {
		return nil, fmt.Errorf("duplicate serial check failed: %w", err)
	}
	if active > 0 {
		return nil, &apperrors.DuplicateSerialError{Serial: req.SerialNumber}
	}

	assetID := req.AssetID
	if assetID == "" {
		assetID, err = s.nextAssetID()
		if err != nil {
			return nil, err
		}
	}

	record, err := s.repo.PersistRecord(req, assetID)
	if err != nil {
		return nil, err
	}

	s.log.Info("inventory record created",
		zap.Int("id", record.ID),
		zap.String("asset_id", record.AssetID),
		zap.String("serial", record.SerialNumber),
	)
	return record, nil
}

func (s *RecordService) Get(id int) (*models.InventoryRecord, error) {
	return s.repo.GetRecord(id)
}

// Edit replaces all editable fields of an existing record. There is no
// duplicate-serial re-check on edit; the duplicate policy applies at
// creation only.
func (s *RecordService) Edit(id int, req models.RecordRequest) error {
	if err := s.repo.UpdateRecord(id, normalize(req)); err != nil {
		return err
	}

	s.log.Info("inventory record updated", zap.Int("id", id))
	return nil
}

// Cancel soft-deletes a record. Administrator only; cancelling an already
// cancelled record is accepted and changes nothing.
func (s *RecordService) Cancel(id int, actor roles.Role) error {
	return s.setCancelled(id, actor, true, "cancel records")
}

// Restore clears the cancelled flag, bringing the record back into active
// views with all other fields untouched.
func (s *RecordService) Restore(id int, actor roles.Role) error {
	return s.setCancelled(id, actor, false, "restore records")
}

func (s *RecordService) setCancelled(id int, actor roles.Role, cancelled bool, operation string) error {
	if !actor.HasPermission(roles.Administrator) {
		return &apperrors.PermissionDeniedError{Operation: operation, Role: actor.String()}
	}

	if err := s.repo.SetCancelled(id, cancelled); err != nil {
		return err
	}

	s.log.Info("cancelled flag updated", zap.Int("id", id), zap.Bool("cancelled", cancelled))
	return nil
}

// Import creates one record per row, skipping rows with an empty serial or a
// serial already held by an active record. Asset ids come from the row when
// present and are otherwise regenerated per row, so consecutive generated
// ids advance with each insert. The first write failure aborts the rest.
func (s *RecordService) Import(rows []models.ImportRow) (models.ImportSummary, error) {
	var summary models.ImportSummary

	for _, row := range rows {
		serial := strings.TrimSpace(row.SerialNumber)
		if serial == "" {
			summary.Skipped++
			continue
		}

		active, err := s.repo.CountActiveBySerial(serial)
		if err != nil {
			return summary, fmt.Errorf("duplicate serial check failed: %w", err)
		}
		if active > 0 {
			summary.Skipped++
			continue
		}

		assetID := strings.TrimSpace(row.AssetID)
		if assetID == "" {
			assetID, err = s.nextAssetID()
			if err != nil {
				return summary, err
			}
		}

		req := models.RecordRequest{
			AssetClass:       row.AssetClass,
			AssetName:        row.AssetName,
			ManufacturedDate: row.ManufacturedDate,
			DateAcquired:     row.DateAcquired,
			BusinessUnit:     row.BusinessUnit,
			Department:       row.Department,
			Branch:           row.Branch,
			Brand:            row.Brand,
			Description:      row.Description,
			SerialNumber:     serial,
			Custodian:        row.Custodian,
			DeviceStatus:     row.DeviceStatus,
		}

		if _, err := s.repo.PersistRecord(req, assetID); err != nil {
			return summary, fmt.Errorf("import aborted at serial %s: %w", serial, err)
		}
		summary.Imported++
	}

	s.log.Info("bulk import finished",
		zap.Int("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

func (s *RecordService) nextAssetID() (string, error) {
	total, err := s.repo.CountRecords()
	if err != nil {
		return "", fmt.Errorf("asset id generation failed: %w", err)
	}
	return metadata.NewAssetID(total + 1).Generate(), nil
}

func missingFields(req models.RecordRequest) []string {
	var missing []string
	for _, field := range requiredFields {
		if field.value(req) == "" {
			missing = append(missing, field.label)
		}
	}
	return missing
}

func normalize(req models.RecordRequest) models.RecordRequest {
	req.AssetClass = strings.TrimSpace(req.AssetClass)
	req.AssetID = strings.TrimSpace(req.AssetID)
	req.AssetName = strings.TrimSpace(req.AssetName)
	req.ManufacturedDate = strings.TrimSpace(req.ManufacturedDate)
	req.DateAcquired = strings.TrimSpace(req.DateAcquired)
	req.BusinessUnit = strings.TrimSpace(req.BusinessUnit)
	req.Department = strings.TrimSpace(req.Department)
	req.Branch = strings.TrimSpace(req.Branch)
	req.Brand = strings.TrimSpace(req.Brand)
	req.Description = strings.TrimSpace(req.Description)
	req.SerialNumber = strings.TrimSpace(req.SerialNumber)
	req.Custodian = strings.TrimSpace(req.Custodian)
	req.DeviceStatus = strings.TrimSpace(req.DeviceStatus)
	return req
}
