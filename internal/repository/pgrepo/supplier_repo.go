package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/fxdesk/internal/domain"
	"github.com/fsdevblog/fxdesk/internal/repository/repoargs"
	"github.com/fsdevblog/fxdesk/pkg/uow"
)

type SupplierRepository struct {
	conn uow.DBTX
}

func NewSupplierRepository(conn uow.DBTX) *SupplierRepository {
	return &SupplierRepository{conn: conn}
}

func (r *SupplierRepository) Create(ctx context.Context, args repoargs.SupplierCreate) (*domain.Supplier, error) {
	supplier := domain.Supplier{
		Name:         args.Name,
		DayRate:      args.DayRate,
		USDTQuantity: args.USDTQuantity,
	}
	row := r.conn.QueryRow(ctx,
		`INSERT INTO suppliers (name, day_rate, usdt_quantity)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		args.Name, args.DayRate, args.USDTQuantity,
	)
	if err := row.Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt); err != nil {
		return nil, convertErr(err, "creating supplier `%s`", args.Name)
	}
	return &supplier, nil
}

// InsertBeneficiaries вставляет набор бенефициаров поставщика. Вызывается только
// внутри uow-транзакции вместе с созданием/обновлением самого поставщика.
func (r *SupplierRepository) InsertBeneficiaries(
	ctx context.Context,
	supplierID int64,
	items []repoargs.BeneficiaryCreate,
) ([]domain.Beneficiary, error) {
	var beneficiaries = make([]domain.Beneficiary, 0, len(items))
	for _, item := range items {
		b := domain.Beneficiary{
			SupplierID: supplierID,
			Name:       item.Name,
			Commission: item.Commission,
		}
		row := r.conn.QueryRow(ctx,
			`INSERT INTO beneficiaries (supplier_id, name, commission)
			 VALUES ($1, $2, $3)
			 RETURNING id`,
			supplierID, item.Name, item.Commission,
		)
		if err := row.Scan(&b.ID); err != nil {
			return nil, convertErr(err, "inserting beneficiary `%s` for supplier %d", item.Name, supplierID)
		}
		beneficiaries = append(beneficiaries, b)
	}
	return beneficiaries, nil
}

func (r *SupplierRepository) UpdateScalars(ctx context.Context, args repoargs.SupplierUpdate) (*domain.Supplier, error) {
	supplier := domain.Supplier{
		ID:           args.ID,
		Name:         args.Name,
		DayRate:      args.DayRate,
		USDTQuantity: args.USDTQuantity,
	}
	row := r.conn.QueryRow(ctx,
		`UPDATE suppliers
		 SET name = $1, day_rate = $2, usdt_quantity = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING created_at, updated_at`,
		args.Name, args.DayRate, args.USDTQuantity, args.ID,
	)
	if err := row.Scan(&supplier.CreatedAt, &supplier.UpdatedAt); err != nil {
		return nil, convertErr(err, "updating supplier with id %d", args.ID)
	}
	return &supplier, nil
}

// DeleteBeneficiariesBySupplier удаляет всех бенефициаров поставщика. Используется
// при замене набора на обновлении: старые записи не мержатся, а выбрасываются.
func (r *SupplierRepository) DeleteBeneficiariesBySupplier(ctx context.Context, supplierID int64) error {
	if _, err := r.conn.Exec(ctx,
		`DELETE FROM beneficiaries WHERE supplier_id = $1`, supplierID,
	); err != nil {
		return convertErr(err, "deleting beneficiaries of supplier %d", supplierID)
	}
	return nil
}

func (r *SupplierRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting supplier with id %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting supplier with id %d", id)
	}
	return nil
}

func (r *SupplierRepository) FindByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	var supplier domain.Supplier
	row := r.conn.QueryRow(ctx,
		`SELECT id, created_at, updated_at, name, day_rate, usdt_quantity
		 FROM suppliers WHERE id = $1`, id,
	)
	if err := row.Scan(
		&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt,
		&supplier.Name, &supplier.DayRate, &supplier.USDTQuantity,
	); err != nil {
		return nil, convertErr(err, "finding supplier by id %d", id)
	}

	byID, err := r.beneficiariesBySupplier(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	supplier.Beneficiaries = byID[id]
	return &supplier, nil
}

// GetAll возвращает всех поставщиков с бенефициарами, по возрастанию id.
func (r *SupplierRepository) GetAll(ctx context.Context) ([]domain.Supplier, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT id, created_at, updated_at, name, day_rate, usdt_quantity
		 FROM suppliers ORDER BY id ASC`,
	)
	if err != nil {
		return nil, convertErr(err, "getting suppliers")
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	var ids []int64
	for rows.Next() {
		var s domain.Supplier
		if scanErr := rows.Scan(
			&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.Name, &s.DayRate, &s.USDTQuantity,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning supplier")
		}
		suppliers = append(suppliers, s)
		ids = append(ids, s.ID)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating suppliers")
	}

	byID, benErr := r.beneficiariesBySupplier(ctx, ids)
	if benErr != nil {
		return nil, benErr
	}
	for i := range suppliers {
		suppliers[i].Beneficiaries = byID[suppliers[i].ID]
	}
	return suppliers, nil
}

// ExistingIDs возвращает подмножество переданных id, реально присутствующих в БД.
func (r *SupplierRepository) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	rows, err := r.conn.Query(ctx, `SELECT id FROM suppliers WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, convertErr(err, "checking supplier ids %v", ids)
	}
	defer rows.Close()

	var existing []int64
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, convertErr(scanErr, "scanning supplier id")
		}
		existing = append(existing, id)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating supplier ids")
	}
	return existing, nil
}

func (r *SupplierRepository) beneficiariesBySupplier(
	ctx context.Context,
	supplierIDs []int64,
) (map[int64][]domain.Beneficiary, error) {
	if len(supplierIDs) == 0 {
		return map[int64][]domain.Beneficiary{}, nil
	}
	rows, err := r.conn.Query(ctx,
		`SELECT id, supplier_id, name, commission
		 FROM beneficiaries
		 WHERE supplier_id = ANY($1)
		 ORDER BY supplier_id ASC, id ASC`,
		supplierIDs,
	)
	if err != nil {
		return nil, convertErr(err, "getting beneficiaries of suppliers %v", supplierIDs)
	}
	defer rows.Close()

	byID := make(map[int64][]domain.Beneficiary)
	for rows.Next() {
		var b domain.Beneficiary
		if scanErr := rows.Scan(&b.ID, &b.SupplierID, &b.Name, &b.Commission); scanErr != nil {
			return nil, convertErr(scanErr, "scanning beneficiary")
		}
		byID[b.SupplierID] = append(byID[b.SupplierID], b)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating beneficiaries")
	}
	return byID, nil
}
