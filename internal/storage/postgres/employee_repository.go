package postgres

import (
	"context"
	"fmt"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

func (r *EmployeeRepository) GetEmployeeByEmail(ctx context.Context, email string) (domain.Employee, error) {
	const query = `SELECT id, name, email, password_hash, role FROM employees WHERE email = $1`

	var emp domain.Employee
	err := r.pool.QueryRow(ctx, query, email).Scan(&emp.ID, &emp.Name, &emp.Email, &emp.PasswordHash, &emp.Role)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Employee{}, domain.ErrEmployeeNotFound
		}
		return domain.Employee{}, fmt.Errorf("get employee by email: %w", err)
	}
	return emp, nil
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, emp domain.Employee) error {
	const stmt = `
INSERT INTO employees (id, name, email, password_hash, role)
VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, stmt, emp.ID, emp.Name, emp.Email, emp.PasswordHash, emp.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}
