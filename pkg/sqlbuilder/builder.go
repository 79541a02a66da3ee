package sqlbuilder

import "github.com/Masterminds/squirrel"

// Dialect identifies the SQL backend the queries are built for.
type Dialect string

const (
	// DialectPostgres uses $1-style placeholders and supports row locking.
	DialectPostgres Dialect = "postgres"
	// DialectSQLite uses ?-style placeholders.
	DialectSQLite Dialect = "sqlite3"
)

// Builder produces squirrel statement builders with the placeholder format
// appropriate for the configured dialect.
type Builder struct {
	dialect Dialect
	sb      squirrel.StatementBuilderType
}

// New creates a Builder for the given dialect. Unknown dialects fall back
// to ?-style placeholders.
func New(dialect Dialect) *Builder {
	var format squirrel.PlaceholderFormat = squirrel.Question
	if dialect == DialectPostgres {
		format = squirrel.Dollar
	}
	return &Builder{
		dialect: dialect,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(format),
	}
}

// Dialect returns the configured dialect.
func (b *Builder) Dialect() Dialect {
	return b.dialect
}

// SupportsRowLocking reports whether SELECT ... FOR UPDATE is available.
// SQLite serializes writers at the connection level, so the clause is
// neither supported nor needed there.
func (b *Builder) SupportsRowLocking() bool {
	return b.dialect == DialectPostgres
}

// Select starts a SELECT statement.
func (b *Builder) Select(columns ...string) squirrel.SelectBuilder {
	return b.sb.Select(columns...)
}

// Insert starts an INSERT statement.
func (b *Builder) Insert(into string) squirrel.InsertBuilder {
	return b.sb.Insert(into)
}

// Update starts an UPDATE statement.
func (b *Builder) Update(table string) squirrel.UpdateBuilder {
	return b.sb.Update(table)
}

// Delete starts a DELETE statement.
func (b *Builder) Delete(from string) squirrel.DeleteBuilder {
	return b.sb.Delete(from)
}
