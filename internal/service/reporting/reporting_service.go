package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/HIBA-BEG/Warehouse-Management/internal/catalog"
	"github.com/HIBA-BEG/Warehouse-Management/internal/domain/models"
	"github.com/HIBA-BEG/Warehouse-Management/internal/repository/mongodb"
	"github.com/HIBA-BEG/Warehouse-Management/internal/repository/sheets"
	"github.com/HIBA-BEG/Warehouse-Management/pkg/clients/warehouse"
)

const (
	reportWriteRange = "Products!A:G"
	dateLayout       = "2006-01-02"
)

// ErrExportNotConfigured indicates no report spreadsheet is wired up.
var ErrExportNotConfigured = errors.New("report export is not configured")

// Service computes statistics snapshots and exports the shareable
// product report. Snapshot persistence and sheet export are both
// optional; a nil repository disables the corresponding feature.
type Service struct {
	client    warehouse.Client
	snapshots mongodb.Repository
	sheet     sheets.Repository
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a new reporting service instance.
func NewService(client warehouse.Client, snapshots mongodb.Repository, sheet sheets.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:    client,
		snapshots: snapshots,
		sheet:     sheet,
		logger:    logger,
		now:       time.Now,
	}
}

// SnapshotStatistics recomputes the fleet statistics from a fresh fetch
// and, when snapshot storage is configured, persists a dated record.
func (s *Service) SnapshotStatistics(ctx context.Context) (models.StatisticsSnapshot, error) {
	result := s.client.ComputeStatistics(ctx)
	if !result.Success {
		return models.StatisticsSnapshot{}, fmt.Errorf("compute statistics: %s", result.Error)
	}

	stamp := s.now().UTC()
	snapshot := models.StatisticsSnapshot{
		Date:          stamp.Truncate(24 * time.Hour),
		TotalProducts: result.Statistics.TotalProducts,
		TotalStock:    result.Statistics.TotalStock,
		TotalValue:    result.Statistics.TotalValue,
		AveragePrice:  result.Statistics.AveragePrice,
		CreatedAt:     stamp,
	}

	if s.snapshots == nil {
		s.logger.Debug("snapshot storage disabled, returning snapshot without persisting")
		return snapshot, nil
	}

	if err := s.snapshots.SaveSnapshot(ctx, snapshot); err != nil {
		return models.StatisticsSnapshot{}, fmt.Errorf("save snapshot: %w", err)
	}

	s.logger.Info("statistics snapshot saved",
		zap.String("date", snapshot.Date.Format(dateLayout)),
		zap.Int("total_products", snapshot.TotalProducts),
		zap.Int("total_stock", snapshot.TotalStock))

	return snapshot, nil
}

// ExportProductReport appends one row per product to the report
// spreadsheet and returns the number of exported products.
func (s *Service) ExportProductReport(ctx context.Context) (int, error) {
	if s.sheet == nil {
		return 0, ErrExportNotConfigured
	}

	result := s.client.ListProducts(ctx)
	if !result.Success {
		return 0, fmt.Errorf("list products: %s", result.Error)
	}

	rows := make([][]interface{}, 0, len(result.Products))
	for _, p := range result.Products {
		rows = append(rows, []interface{}{
			p.Name,
			p.Type,
			p.Barcode,
			p.Price,
			p.Supplier,
			p.TotalQuantity(),
			string(catalog.ProductStatus(p)),
		})
	}

	if err := s.sheet.AppendRows(ctx, reportWriteRange, rows); err != nil {
		return 0, fmt.Errorf("export product report: %w", err)
	}

	s.logger.Info("product report exported", zap.Int("products", len(rows)))
	return len(rows), nil
}
