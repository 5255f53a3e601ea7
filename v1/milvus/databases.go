package milvus

import "context"

// Databases manages databases. Obtain it from Client.Databases.
type Databases struct {
	caller *caller
}

// Create creates a database.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - dbName: Name of the new database
//   - properties: Optional database properties, passed through uninterpreted
//     and omitted when empty
//
// Returns:
//   - *Result: Acknowledged on success
//   - error: *MissingArgumentError, *TransportError or *ServerError
//
// Example:
//
//	_, err := client.Databases().Create(ctx, "analytics", map[string]any{
//	    "database.max.collections": 10,
//	})
func (d *Databases) Create(ctx context.Context, dbName string, properties map[string]any) (*Result, error) {
	op := write(pathDatabases, "create")
	b := newBuilder(op).
		required(pDBName, dbName).
		optional(pProperties, properties)
	return d.caller.call(ctx, op, dbName, b)
}

// Alter updates database properties.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - dbName: Database to alter
//   - properties: Properties to set, e.g. {"database.replica.number": 2}.
//     A nil map is a missing argument; an empty map is sent as {}.
//
// Returns:
//   - *Result: Acknowledged on success
//   - error: *MissingArgumentError, *TransportError or *ServerError
func (d *Databases) Alter(ctx context.Context, dbName string, properties map[string]any) (*Result, error) {
	op := write(pathDatabases, "alter")
	b := newBuilder(op).
		required(pDBName, dbName).
		supplied(pProperties, properties)
	return d.caller.call(ctx, op, dbName, b)
}

// Describe returns the database ID and properties under data.
//
// Example:
//
//	res, err := client.Databases().Describe(ctx, "analytics")
//	id := res.Data().Get("dbID").Int()
func (d *Databases) Describe(ctx context.Context, dbName string) (*Result, error) {
	op := read(pathDatabases, "describe")
	return d.caller.call(ctx, op, dbName, newBuilder(op).required(pDBName, dbName))
}

// List returns the database names under data. The request body is {}.
func (d *Databases) List(ctx context.Context) (*Result, error) {
	op := read(pathDatabases, "list")
	return d.caller.call(ctx, op, "", newBuilder(op))
}

// Drop removes the database and every collection in it.
func (d *Databases) Drop(ctx context.Context, dbName string) (*Result, error) {
	op := write(pathDatabases, "drop")
	return d.caller.call(ctx, op, dbName, newBuilder(op).required(pDBName, dbName))
}
