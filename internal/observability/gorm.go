package observability

import (
	"context"

	servertiming "github.com/mitchellh/go-server-timing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	gormSpanKey   = "restau:gorm:span"
	gormTimingKey = "restau:gorm:timing"
	callbackName  = "restau"
)

// RegisterGORMCallbacks wraps every gorm statement in a span and, when the
// request carries Server-Timing, in a "db" metric.
func RegisterGORMCallbacks(db *gorm.DB, t *Telemetry) error {
	cb := db.Callback()

	if err := cb.Create().Before("gorm:create").Register(callbackName+":before_create", before(t, "db.create")); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register(callbackName+":after_create", after); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register(callbackName+":before_query", before(t, "db.query")); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register(callbackName+":after_query", after); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register(callbackName+":before_update", before(t, "db.update")); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register(callbackName+":after_update", after); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register(callbackName+":before_delete", before(t, "db.delete")); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register(callbackName+":after_delete", after); err != nil {
		return err
	}
	if err := cb.Row().Before("gorm:row").Register(callbackName+":before_row", before(t, "db.row")); err != nil {
		return err
	}
	if err := cb.Row().After("gorm:row").Register(callbackName+":after_row", after); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register(callbackName+":before_raw", before(t, "db.raw")); err != nil {
		return err
	}
	return cb.Raw().After("gorm:raw").Register(callbackName+":after_raw", after)
}

func before(t *Telemetry, spanName string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx := db.Statement.Context
		if ctx == nil {
			ctx = context.Background()
		}
		if timing := servertiming.FromContext(ctx); timing != nil {
			db.InstanceSet(gormTimingKey, timing.NewMetric("db").Start())
		}
		ctx, span := t.Start(ctx, spanName, attribute.String("db.system", db.Dialector.Name()))
		db.Statement.Context = ctx
		db.InstanceSet(gormSpanKey, span)
	}
}

func after(db *gorm.DB) {
	if v, ok := db.InstanceGet(gormTimingKey); ok {
		if m, ok := v.(*servertiming.Metric); ok {
			m.Stop()
		}
	}
	v, ok := db.InstanceGet(gormSpanKey)
	if !ok {
		return
	}
	span, ok := v.(trace.Span)
	if !ok {
		return
	}
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", db.RowsAffected))
	End(span, db.Error)
}
