package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/fxdesk/internal/domain"
	"github.com/fsdevblog/fxdesk/internal/repository/repoargs"
	"github.com/fsdevblog/fxdesk/pkg/uow"
)

type TransactionRepository struct {
	conn uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

const transactionColumns = `id, created_at, updated_at, amount_fcfa, rate, amount_usdt`

func (r *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.TransactionCreate,
) (*domain.Transaction, error) {
	tx := domain.Transaction{
		AmountFCFA: args.AmountFCFA,
		Rate:       args.Rate,
		AmountUSDT: args.AmountUSDT,
	}
	row := r.conn.QueryRow(ctx,
		`INSERT INTO transactions (amount_fcfa, rate, amount_usdt)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		args.AmountFCFA, args.Rate, args.AmountUSDT,
	)
	if err := row.Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt); err != nil {
		return nil, convertErr(err, "creating transaction")
	}
	return &tx, nil
}

// Update перезаписывает сумму, курс и производный объем USDT. created_at тоже
// обновляется: исторически дата транзакции сбрасывается при редактировании,
// и отчеты по периодам на это поведение завязаны.
func (r *TransactionRepository) Update(
	ctx context.Context,
	args repoargs.TransactionUpdate,
) (*domain.Transaction, error) {
	tx := domain.Transaction{
		ID:         args.ID,
		AmountFCFA: args.AmountFCFA,
		Rate:       args.Rate,
		AmountUSDT: args.AmountUSDT,
	}
	row := r.conn.QueryRow(ctx,
		`UPDATE transactions
		 SET amount_fcfa = $1, rate = $2, amount_usdt = $3, created_at = now(), updated_at = now()
		 WHERE id = $4
		 RETURNING created_at, updated_at`,
		args.AmountFCFA, args.Rate, args.AmountUSDT, args.ID,
	)
	if err := row.Scan(&tx.CreatedAt, &tx.UpdatedAt); err != nil {
		return nil, convertErr(err, "updating transaction with id %d", args.ID)
	}
	return &tx, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting transaction with id %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting transaction with id %d", id)
	}
	return nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	var tx domain.Transaction
	row := r.conn.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id,
	)
	if err := row.Scan(
		&tx.ID, &tx.CreatedAt, &tx.UpdatedAt, &tx.AmountFCFA, &tx.Rate, &tx.AmountUSDT,
	); err != nil {
		return nil, convertErr(err, "finding transaction by id %d", id)
	}
	return &tx, nil
}

// GetAll возвращает все транзакции по возрастанию id.
func (r *TransactionRepository) GetAll(ctx context.Context) ([]domain.Transaction, error) {
	return r.queryTransactions(ctx,
		`SELECT `+transactionColumns+` FROM transactions ORDER BY id ASC`)
}

// GetSince возвращает транзакции с created_at не раньше since, по возрастанию id.
func (r *TransactionRepository) GetSince(ctx context.Context, since time.Time) ([]domain.Transaction, error) {
	return r.queryTransactions(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE created_at >= $1 ORDER BY id ASC`, since)
}

// GetRecent возвращает limit последних транзакций, от новых к старым.
func (r *TransactionRepository) GetRecent(ctx context.Context, limit uint) ([]domain.Transaction, error) {
	return r.queryTransactions(ctx,
		`SELECT `+transactionColumns+` FROM transactions ORDER BY created_at DESC, id DESC LIMIT $1`, int64(limit))
}

func (r *TransactionRepository) queryTransactions(
	ctx context.Context,
	query string,
	queryArgs ...any,
) ([]domain.Transaction, error) {
	rows, err := r.conn.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, convertErr(err, "getting transactions")
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if scanErr := rows.Scan(
			&tx.ID, &tx.CreatedAt, &tx.UpdatedAt, &tx.AmountFCFA, &tx.Rate, &tx.AmountUSDT,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning transaction")
		}
		transactions = append(transactions, tx)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating transactions")
	}
	return transactions, nil
}

// Link создает строки связи транзакция-поставщик. Вызывается внутри uow-транзакции
// вместе с созданием самой транзакции.
func (r *TransactionRepository) Link(ctx context.Context, transactionID int64, supplierIDs []int64) error {
	for _, supplierID := range supplierIDs {
		if _, err := r.conn.Exec(ctx,
			`INSERT INTO transaction_suppliers (transaction_id, supplier_id) VALUES ($1, $2)`,
			transactionID, supplierID,
		); err != nil {
			return convertErr(err, "linking supplier %d to transaction %d", supplierID, transactionID)
		}
	}
	return nil
}

func (r *TransactionRepository) UnlinkByTransaction(ctx context.Context, transactionID int64) error {
	if _, err := r.conn.Exec(ctx,
		`DELETE FROM transaction_suppliers WHERE transaction_id = $1`, transactionID,
	); err != nil {
		return convertErr(err, "unlinking suppliers of transaction %d", transactionID)
	}
	return nil
}

// GetLinkedSuppliers возвращает поставщиков транзакции с бенефициарами,
// по возрастанию id поставщика.
func (r *TransactionRepository) GetLinkedSuppliers(
	ctx context.Context,
	transactionID int64,
) ([]domain.Supplier, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT s.id, s.created_at, s.updated_at, s.name, s.day_rate, s.usdt_quantity
		 FROM suppliers s
		 JOIN transaction_suppliers ts ON ts.supplier_id = s.id
		 WHERE ts.transaction_id = $1
		 ORDER BY s.id ASC`,
		transactionID,
	)
	if err != nil {
		return nil, convertErr(err, "getting suppliers of transaction %d", transactionID)
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
		return nil, convertErr(rowsErr, "iterating suppliers of transaction %d", transactionID)
	}

	benefRepo := NewSupplierRepository(r.conn)
	byID, benErr := benefRepo.beneficiariesBySupplier(ctx, ids)
	if benErr != nil {
		return nil, benErr
	}
	for i := range suppliers {
		suppliers[i].Beneficiaries = byID[suppliers[i].ID]
	}
	return suppliers, nil
}

// GetLinkedSupplierNames возвращает имена поставщиков по каждой из транзакций,
// в порядке возрастания id поставщика.
func (r *TransactionRepository) GetLinkedSupplierNames(
	ctx context.Context,
	transactionIDs []int64,
) (map[int64][]string, error) {
	names := make(map[int64][]string)
	if len(transactionIDs) == 0 {
		return names, nil
	}
	rows, err := r.conn.Query(ctx,
		`SELECT ts.transaction_id, s.name
		 FROM transaction_suppliers ts
		 JOIN suppliers s ON s.id = ts.supplier_id
		 WHERE ts.transaction_id = ANY($1)
		 ORDER BY ts.transaction_id ASC, s.id ASC`,
		transactionIDs,
	)
	if err != nil {
		return nil, convertErr(err, "getting supplier names for transactions %v", transactionIDs)
	}
	defer rows.Close()

	for rows.Next() {
		var transactionID int64
		var name string
		if scanErr := rows.Scan(&transactionID, &name); scanErr != nil {
			return nil, convertErr(scanErr, "scanning supplier name")
		}
		names[transactionID] = append(names[transactionID], name)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating supplier names")
	}
	return names, nil
}

// AllProfitRows возвращает по строке на каждую связь транзакция-поставщик
// с данными для расчета прибыли. Сумму считает сервис через пакет allocation.
func (r *TransactionRepository) AllProfitRows(ctx context.Context) ([]repoargs.ProfitRow, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT t.rate, s.day_rate, s.usdt_quantity
		 FROM transaction_suppliers ts
		 JOIN transactions t ON t.id = ts.transaction_id
		 JOIN suppliers s ON s.id = ts.supplier_id`,
	)
	if err != nil {
		return nil, convertErr(err, "getting profit rows")
	}
	defer rows.Close()

	var profitRows []repoargs.ProfitRow
	for rows.Next() {
		var pr repoargs.ProfitRow
		if scanErr := rows.Scan(&pr.Rate, &pr.DayRate, &pr.USDTQuantity); scanErr != nil {
			return nil, convertErr(scanErr, "scanning profit row")
		}
		profitRows = append(profitRows, pr)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating profit rows")
	}
	return profitRows, nil
}
