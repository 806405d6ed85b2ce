package database

import (
	"context"

	"gorm.io/gorm"
)

// The legacy schema, reproduced as-is: identity columns and timestamp
// defaults, but no foreign keys and no unique constraints. Department
// linkage across tables is free text by convention.
const schemaDDL = `
DROP TABLE IF EXISTS public.employees;
DROP TABLE IF EXISTS public.dept;
DROP TABLE IF EXISTS public.history;
DROP TABLE IF EXISTS public.outbox_events;

CREATE TABLE public.dept (
	dept_id BIGINT GENERATED BY DEFAULT AS IDENTITY,
	created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	dept_name TEXT NULL,
	base_pay FLOAT,
	dept_populus INT
);

CREATE TABLE public.employees (
	id BIGINT GENERATED BY DEFAULT AS IDENTITY,
	hire_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	name TEXT NULL,
	skills TEXT NULL,
	pay REAL,
	department TEXT NULL,
	level INTEGER
);

CREATE TABLE public.history (
	ledger_id BIGINT GENERATED BY DEFAULT AS IDENTITY,
	created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	emp_name TEXT NULL,
	days_employed BIGINT,
	day_wage FLOAT,
	in_dept TEXT NULL,
	emp_id BIGINT
);

CREATE TABLE public.outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT,
	aggregate_type TEXT NOT NULL,
	aggregate_id TEXT NOT NULL,
	event_type TEXT NOT NULL,
	topic TEXT NOT NULL,
	payload JSONB NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	retry_count INTEGER NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMP WITH TIME ZONE,
	processed_at TIMESTAMP WITH TIME ZONE,
	created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
);
`

// Reset drops and recreates all tables. Destructive; only the seed CLI
// calls it.
func Reset(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec(schemaDDL).Error
}
