package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jatin-yadav05/hospital-management/internal/domain"
	_ "modernc.org/sqlite"
)

var (
	ErrMedicineNotFound  = errors.New("medicine not found")
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Repository struct {
	db *sql.DB
}

type RepoInterface interface {
	ListMedicines(ctx context.Context, category, search string) ([]*domain.Medicine, error)
	GetMedicine(ctx context.Context, id int64) (*domain.Medicine, error)
	AdjustStock(ctx context.Context, id int64, delta int) error
	ListDoctors(ctx context.Context, department string) ([]*domain.Doctor, error)
	GetDoctor(ctx context.Context, id int64) (*domain.Doctor, error)
	Close() error
	RunMigrations(string) error
}

func NewRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

const medicineColumns = `id, name, description, price, category, image_url, stock,
		brand, requires_prescription, dosage_form, pack_size, created_at`

func (r *Repository) ListMedicines(ctx context.Context, category, search string) ([]*domain.Medicine, error) {
	query := fmt.Sprintf(`SELECT %s FROM medicines`, medicineColumns)

	var conds []string
	var args []interface{}
	if category != "" && category != "all" {
		conds = append(conds, "category = ?")
		args = append(args, category)
	}
	if search != "" {
		conds = append(conds, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query medicines: %w", err)
	}
	defer rows.Close()

	var medicines []*domain.Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, err
		}
		medicines = append(medicines, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return medicines, nil
}

func (r *Repository) GetMedicine(ctx context.Context, id int64) (*domain.Medicine, error) {
	query := fmt.Sprintf(`SELECT %s FROM medicines WHERE id = ?`, medicineColumns)

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query medicine: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("row iteration error: %w", err)
		}
		return nil, ErrMedicineNotFound
	}

	return scanMedicine(rows)
}

// AdjustStock moves stock by delta (negative to reserve at checkout).
// Reservations that would take stock below zero fail with
// ErrInsufficientStock and leave the row unchanged.
func (r *Repository) AdjustStock(ctx context.Context, id int64, delta int) error {
	query := `UPDATE medicines SET stock = stock + ? WHERE id = ? AND stock + ? >= 0`

	result, err := r.db.ExecContext(ctx, query, delta, id, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		// Either the medicine is unknown or the reservation overdraws.
		if _, err := r.GetMedicine(ctx, id); err != nil {
			return err
		}
		return ErrInsufficientStock
	}

	return nil
}

const doctorColumns = `id, name, specialty, department, image_url, experience,
		education, description, ratings, reviews, consultation_fee, created_at`

func (r *Repository) ListDoctors(ctx context.Context, department string) ([]*domain.Doctor, error) {
	query := fmt.Sprintf(`SELECT %s FROM doctors`, doctorColumns)

	var args []interface{}
	if department != "" {
		query += " WHERE department = ?"
		args = append(args, department)
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer rows.Close()

	var doctors []*domain.Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		doctors = append(doctors, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return doctors, nil
}

func (r *Repository) GetDoctor(ctx context.Context, id int64) (*domain.Doctor, error) {
	query := fmt.Sprintf(`SELECT %s FROM doctors WHERE id = ?`, doctorColumns)

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctor: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("row iteration error: %w", err)
		}
		return nil, ErrDoctorNotFound
	}

	return scanDoctor(rows)
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func scanMedicine(rows *sql.Rows) (*domain.Medicine, error) {
	m := &domain.Medicine{}
	err := rows.Scan(
		&m.ID,
		&m.Name,
		&m.Description,
		&m.Price,
		&m.Category,
		&m.ImageURL,
		&m.Stock,
		&m.Brand,
		&m.RequiresPrescription,
		&m.DosageForm,
		&m.PackSize,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan medicine: %w", err)
	}
	return m, nil
}

func scanDoctor(rows *sql.Rows) (*domain.Doctor, error) {
	d := &domain.Doctor{}
	err := rows.Scan(
		&d.ID,
		&d.Name,
		&d.Specialty,
		&d.Department,
		&d.ImageURL,
		&d.Experience,
		&d.Education,
		&d.Description,
		&d.Ratings,
		&d.Reviews,
		&d.ConsultationFee,
		&d.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan doctor: %w", err)
	}
	return d, nil
}
