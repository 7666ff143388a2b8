package config

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bhoumik1804/krsika-backend/appctx"
)

// MillGuardPlugin is a defense-in-depth layer for tenant isolation: it scopes
// queries, updates and deletes to the request context's mill_id when the model
// carries a mill_id column. Services still filter explicitly; the guard only
// catches the query someone forgot to scope.
//
// NOTE:
// - Raw SQL is not covered. Raw queries must include mill_id manually.
// - Bypass is explicit via appctx.ContextKeySkipMillScope (cmd tools, tests).
type MillGuardPlugin struct{}

func NewMillGuardPlugin() *MillGuardPlugin { return &MillGuardPlugin{} }

func (p *MillGuardPlugin) Name() string { return "mill_guard" }

func (p *MillGuardPlugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Query().Before("gorm:query").Register("mill_guard:query", millGuardCallback); err != nil {
		return err
	}
	if err := db.Callback().Row().Before("gorm:row").Register("mill_guard:row", millGuardCallback); err != nil {
		return err
	}
	if err := db.Callback().Update().Before("gorm:update").Register("mill_guard:update", millGuardCallback); err != nil {
		return err
	}
	return db.Callback().Delete().Before("gorm:delete").Register("mill_guard:delete", millGuardCallback)
}

func millGuardCallback(db *gorm.DB) {
	if db == nil || db.Statement == nil {
		return
	}
	ctx := db.Statement.Context
	if ctx == nil || shouldBypassMillScope(ctx) {
		return
	}
	millId := millIdFromContext(ctx)
	if millId == "" {
		return
	}

	// Only apply if the current model/table has a mill_id column.
	if db.Statement.Schema == nil {
		return
	}
	hasMillId := false
	for _, f := range db.Statement.Schema.Fields {
		if strings.EqualFold(f.DBName, "mill_id") {
			hasMillId = true
			break
		}
	}
	if !hasMillId {
		return
	}

	// Don't duplicate an explicit tenant filter.
	if whereHasMillId(db.Statement.Clauses["WHERE"]) {
		return
	}

	db.Statement.AddClause(clause.Where{
		Exprs: []clause.Expression{
			clause.Eq{
				Column: clause.Column{Table: db.Statement.Table, Name: "mill_id"},
				Value:  millId,
			},
		},
	})
}

func millIdFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(appctx.ContextKeyMillId).(string); ok {
		return v
	}
	return ""
}

func shouldBypassMillScope(ctx context.Context) bool {
	v, ok := ctx.Value(appctx.ContextKeySkipMillScope).(bool)
	return ok && v
}

func whereHasMillId(c clause.Clause) bool {
	if c.Expression == nil {
		return false
	}
	w, ok := c.Expression.(clause.Where)
	if !ok {
		return false
	}
	for _, e := range w.Exprs {
		if exprHasMillId(e) {
			return true
		}
	}
	return false
}

func exprHasMillId(e clause.Expression) bool {
	switch v := e.(type) {
	case clause.Eq:
		return colIsMillId(v.Column)
	case clause.Neq:
		return colIsMillId(v.Column)
	case clause.IN:
		return colIsMillId(v.Column)
	case clause.AndConditions:
		for _, x := range v.Exprs {
			if exprHasMillId(x) {
				return true
			}
		}
		return false
	case clause.OrConditions:
		for _, x := range v.Exprs {
			if exprHasMillId(x) {
				return true
			}
		}
		return false
	case clause.Expr:
		// Best-effort for raw expressions.
		return strings.Contains(strings.ToLower(v.SQL), "mill_id")
	default:
		return false
	}
}

func colIsMillId(col any) bool {
	switch c := col.(type) {
	case string:
		return strings.EqualFold(c, "mill_id")
	case clause.Column:
		return strings.EqualFold(c.Name, "mill_id")
	default:
		return false
	}
}
