package milvus

import "context"

// Partitions manages the partitions of a collection. Obtain it from
// Client.Partitions. Every method requires the collection name.
type Partitions struct {
	caller *caller
}

// PartitionRequest addresses one partition.
type PartitionRequest struct {
	CollectionName string
	PartitionName  string
	DBName         string
}

// PartitionsRequest addresses several partitions for Load and Release.
type PartitionsRequest struct {
	CollectionName string
	PartitionNames []string
	DBName         string
}

// List returns the partition names of a collection, including "_default".
func (p *Partitions) List(ctx context.Context, collectionName, dbName string) (*Result, error) {
	op := read(pathPartitions, "list")
	b := newBuilder(op).
		required(pCollectionName, collectionName).
		optional(pDBName, dbName)
	return p.caller.call(ctx, op, collectionName, b)
}

// Create adds a partition to a collection.
//
// Example:
//
//	_, err := client.Partitions().Create(ctx, milvus.PartitionRequest{
//	    CollectionName: "docs",
//	    PartitionName:  "2024",
//	})
func (p *Partitions) Create(ctx context.Context, req PartitionRequest) (*Result, error) {
	return p.single(ctx, write(pathPartitions, "create"), req)
}

// Drop deletes a partition and its entities. The partition must be released first.
func (p *Partitions) Drop(ctx context.Context, req PartitionRequest) (*Result, error) {
	return p.single(ctx, write(pathPartitions, "drop"), req)
}

// Has reports whether the partition exists under data.has.
func (p *Partitions) Has(ctx context.Context, req PartitionRequest) (*Result, error) {
	return p.single(ctx, read(pathPartitions, "has"), req)
}

// GetStats returns the entity count of a partition under data.rowCount.
func (p *Partitions) GetStats(ctx context.Context, req PartitionRequest) (*Result, error) {
	return p.single(ctx, read(pathPartitions, "get_stats"), req)
}

// Load brings the listed partitions into memory. PartitionNames must not be empty.
//
// Example:
//
//	_, err := client.Partitions().Load(ctx, milvus.PartitionsRequest{
//	    CollectionName: "docs",
//	    PartitionNames: []string{"2023", "2024"},
//	})
func (p *Partitions) Load(ctx context.Context, req PartitionsRequest) (*Result, error) {
	return p.multi(ctx, write(pathPartitions, "load"), req)
}

// Release evicts the listed partitions from memory.
func (p *Partitions) Release(ctx context.Context, req PartitionsRequest) (*Result, error) {
	return p.multi(ctx, write(pathPartitions, "release"), req)
}

func (p *Partitions) single(ctx context.Context, op operation, req PartitionRequest) (*Result, error) {
	b := newBuilder(op).
		required(pCollectionName, req.CollectionName).
		required(pPartitionName, req.PartitionName).
		optional(pDBName, req.DBName)
	return p.caller.call(ctx, op, req.CollectionName, b)
}

func (p *Partitions) multi(ctx context.Context, op operation, req PartitionsRequest) (*Result, error) {
	b := newBuilder(op).
		required(pCollectionName, req.CollectionName).
		required(pPartitionNames, req.PartitionNames).
		optional(pDBName, req.DBName)
	return p.caller.call(ctx, op, req.CollectionName, b)
}
