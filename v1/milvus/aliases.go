package milvus

import "context"

// Aliases manages collection aliases. Obtain it from Client.Aliases.
//
// An alias can be used wherever a collection name is expected, which lets
// callers switch the collection behind it without a deploy.
type Aliases struct {
	caller *caller
}

// AliasRequest binds AliasName to CollectionName.
type AliasRequest struct {
	AliasName      string
	CollectionName string
	DBName         string
}

// List returns the alias names of a database, the default one if dbName is empty.
func (a *Aliases) List(ctx context.Context, dbName string) (*Result, error) {
	op := read(pathAliases, "list")
	return a.caller.call(ctx, op, dbName, newBuilder(op).optional(pDBName, dbName))
}

// Describe returns the collection and database an alias points to.
func (a *Aliases) Describe(ctx context.Context, aliasName, dbName string) (*Result, error) {
	op := read(pathAliases, "describe")
	b := newBuilder(op).
		required(pAliasName, aliasName).
		optional(pDBName, dbName)
	return a.caller.call(ctx, op, aliasName, b)
}

// Create binds a new alias to a collection.
//
// Example:
//
//	_, err := client.Aliases().Create(ctx, milvus.AliasRequest{
//	    AliasName:      "docs_live",
//	    CollectionName: "docs_v2",
//	})
func (a *Aliases) Create(ctx context.Context, req AliasRequest) (*Result, error) {
	return a.bind(ctx, write(pathAliases, "create"), req)
}

// Alter moves an existing alias to another collection.
func (a *Aliases) Alter(ctx context.Context, req AliasRequest) (*Result, error) {
	return a.bind(ctx, write(pathAliases, "alter"), req)
}

// Drop removes an alias. The collection behind it is not affected.
func (a *Aliases) Drop(ctx context.Context, aliasName, dbName string) (*Result, error) {
	op := write(pathAliases, "drop")
	b := newBuilder(op).
		required(pAliasName, aliasName).
		optional(pDBName, dbName)
	return a.caller.call(ctx, op, aliasName, b)
}

func (a *Aliases) bind(ctx context.Context, op operation, req AliasRequest) (*Result, error) {
	b := newBuilder(op).
		required(pAliasName, req.AliasName).
		required(pCollectionName, req.CollectionName).
		optional(pDBName, req.DBName)
	return a.caller.call(ctx, op, req.CollectionName, b)
}
