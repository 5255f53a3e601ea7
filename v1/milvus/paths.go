package milvus

// Resource families. Each maps to the first path segment.
const (
	pathDatabases   = "databases"
	pathCollections = "collections"
	pathEntities    = "entities"
	pathPartitions  = "partitions"
	pathIndexes     = "indexes"
	pathAliases     = "aliases"
)

// operation identifies one endpoint: {resource}/{action}.
type operation struct {
	resource string
	action   string
	mutating bool
}

func (o operation) path() string {
	return o.resource + "/" + o.action
}

func read(resource, action string) operation {
	return operation{resource: resource, action: action}
}

func write(resource, action string) operation {
	return operation{resource: resource, action: action, mutating: true}
}
