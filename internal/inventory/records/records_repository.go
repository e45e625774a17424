package records

import (
	"fmt"
	"strconv"

	"github.com/Sefbongo/DeviceInventorySystem/internal/repository"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/apperrors"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

const inventoryTable = "inventory"

type RecordsRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *RecordsRepository {
	return &RecordsRepository{
		repository: r,
	}
}

func (r *RecordsRepository) GetRecord(id int) (*models.InventoryRecord, error) {
	var record models.InventoryRecord
	query := r.recordQuery().Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&record)
	if err != nil {
		return nil, fmt.Errorf("unable to select inventory record: %w", err)
	}
	if !found {
		return nil, &apperrors.NotFoundError{Resource: "inventory record", Key: strconv.Itoa(id)}
	}

	return &record, nil
}

// PersistRecord inserts a new row with cancelled=false and returns it with
// its store-assigned id.
func (r *RecordsRepository) PersistRecord(req models.RecordRequest, assetID string) (*models.InventoryRecord, error) {
	query := r.repository.GoquDBWrapper.Insert(inventoryTable).
		Rows(recordValues(req, assetID))

	result, err := query.Executor().Exec()
	if err != nil {
		return nil, apperrors.WrapDBError("failed to insert inventory record", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new record id: %w", err)
	}

	return r.GetRecord(int(id))
}

// UpdateRecord replaces every editable field of the row in one statement.
// The cancelled flag is deliberately untouched here.
func (r *RecordsRepository) UpdateRecord(id int, req models.RecordRequest) error {
	result, err := r.repository.GoquDBWrapper.
		Update(inventoryTable).
		Set(recordValues(req, req.AssetID)).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()

	if err != nil {
		return apperrors.WrapDBError("failed to update inventory record", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &apperrors.NotFoundError{Resource: "inventory record", Key: strconv.Itoa(id)}
	}

	return nil
}

func (r *RecordsRepository) SetCancelled(id int, cancelled bool) error {
	result, err := r.repository.GoquDBWrapper.
		Update(inventoryTable).
		Set(goqu.Record{"cancelled": cancelled}).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()

	if err != nil {
		return apperrors.WrapDBError("failed to update cancelled flag", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &apperrors.NotFoundError{Resource: "inventory record", Key: strconv.Itoa(id)}
	}

	return nil
}

// CountRecords counts every row, cancelled ones included: asset ids are
// derived from the total row count.
func (r *RecordsRepository) CountRecords() (int, error) {
	var count int
	query := r.repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From(inventoryTable)

	if _, err := query.Executor().ScanVal(&count); err != nil {
		return 0, fmt.Errorf("failed to count inventory records: %w", err)
	}

	return count, nil
}

// CountActiveBySerial is the duplicate check: cancelled rows never block a
// serial.
func (r *RecordsRepository) CountActiveBySerial(serial string) (int, error) {
	var count int
	query := r.repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From(inventoryTable).
		Where(goqu.Ex{
			"serial_number": serial,
			"cancelled":     false,
		})

	if _, err := query.Executor().ScanVal(&count); err != nil {
		return 0, fmt.Errorf("failed to count records by serial: %w", err)
	}

	return count, nil
}

func (r *RecordsRepository) recordQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		"id", "asset_class", "asset_id", "asset_name", "manufactured_date",
		"date_acquired", "business_unit", "department", "branch", "brand",
		"description", "serial_number", "custodian", "device_status", "cancelled",
	).From(inventoryTable)
}

func recordValues(req models.RecordRequest, assetID string) goqu.Record {
	return goqu.Record{
		"asset_class":       req.AssetClass,
		"asset_id":          assetID,
		"asset_name":        req.AssetName,
		"manufactured_date": req.ManufacturedDate,
		"date_acquired":     req.DateAcquired,
		"business_unit":     req.BusinessUnit,
		"department":        req.Department,
		"branch":            req.Branch,
		"brand":             req.Brand,
		"description":       req.Description,
		"serial_number":     req.SerialNumber,
		"custodian":         req.Custodian,
		"device_status":     req.DeviceStatus,
	}
}
