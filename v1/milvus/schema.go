package milvus

// Field data types accepted by Milvus.
const (
	DataTypeBool              = "Bool"
	DataTypeInt8              = "Int8"
	DataTypeInt16             = "Int16"
	DataTypeInt32             = "Int32"
	DataTypeInt64             = "Int64"
	DataTypeFloat             = "Float"
	DataTypeDouble            = "Double"
	DataTypeVarChar           = "VarChar"
	DataTypeJSON              = "JSON"
	DataTypeArray             = "Array"
	DataTypeFloatVector       = "FloatVector"
	DataTypeBinaryVector      = "BinaryVector"
	DataTypeFloat16Vector     = "Float16Vector"
	DataTypeBFloat16Vector    = "BFloat16Vector"
	DataTypeSparseFloatVector = "SparseFloatVector"
)

// Metric types for vector indexes and searches.
const (
	MetricCosine = "COSINE"
	MetricIP     = "IP"
	MetricL2     = "L2"
	MetricBM25   = "BM25"
)

// FieldSchema describes one collection field. ElementTypeParams carries
// type-specific settings such as "dim" or "max_length".
type FieldSchema struct {
	FieldName         string         `json:"fieldName"`
	DataType          string         `json:"dataType"`
	ElementDataType   string         `json:"elementDataType,omitempty"`
	IsPrimary         bool           `json:"isPrimary,omitempty"`
	IsPartitionKey    bool           `json:"isPartitionKey,omitempty"`
	Nullable          bool           `json:"nullable,omitempty"`
	ElementTypeParams map[string]any `json:"elementTypeParams,omitempty"`
}

// Function derives an output field from input fields on the server, e.g. BM25.
type Function struct {
	Name             string         `json:"name"`
	Type             string         `json:"type"`
	InputFieldNames  []string       `json:"inputFieldNames"`
	OutputFieldNames []string       `json:"outputFieldNames"`
	Params           map[string]any `json:"params,omitempty"`
}

// IndexParam describes an index on one field.
type IndexParam struct {
	FieldName  string         `json:"fieldName"`
	IndexName  string         `json:"indexName,omitempty"`
	MetricType string         `json:"metricType,omitempty"`
	IndexType  string         `json:"indexType,omitempty"`
	Params     map[string]any `json:"params,omitempty"`
}

// Rerank fuses the result lists of a hybrid search.
type Rerank struct {
	Strategy string         `json:"strategy"`
	Params   map[string]any `json:"params,omitempty"`
}

// RRFRanker fuses by reciprocal rank with smoothing constant k.
func RRFRanker(k int) Rerank {
	return Rerank{Strategy: "rrf", Params: map[string]any{"k": k}}
}

// WeightedRanker fuses by weighted score, one weight per search item.
func WeightedRanker(weights ...float64) Rerank {
	return Rerank{Strategy: "weighted", Params: map[string]any{"weights": weights}}
}
