package milvus

// param maps a caller-facing argument name to its wire key.
type param struct {
	name string
	wire string
}

// Parameter table. Every operation builds its payload from these entries.
var (
	pDBName            = param{"db_name", "dbName"}
	pNewDBName         = param{"new_db_name", "newDbName"}
	pProperties        = param{"properties", "properties"}
	pCollectionName    = param{"collection_name", "collectionName"}
	pNewCollectionName = param{"new_collection_name", "newCollectionName"}
	pSchema            = param{"schema", "schema"}
	pAutoID            = param{"auto_id", "autoId"}
	pFields            = param{"fields", "fields"}
	pFunctions         = param{"functions", "functions"}
	pSchemaName        = param{"name", "name"}
	pIndexParams       = param{"index_params", "indexParams"}
	pParams            = param{"params", "params"}
	pPartitionName     = param{"partition_name", "partitionName"}
	pPartitionNames    = param{"partition_names", "partitionNames"}
	pData              = param{"data", "data"}
	pFilter            = param{"filter", "filter"}
	pOutputFields      = param{"output_fields", "outputFields"}
	pLimit             = param{"limit", "limit"}
	pOffset            = param{"offset", "offset"}
	pID                = param{"id", "id"}
	pAnnsField         = param{"anns_field", "annsField"}
	pGroupingField     = param{"grouping_field", "groupingField"}
	pSearchParams      = param{"search_params", "searchParams"}
	pMetricType        = param{"metric_type", "metricType"}
	pSearch            = param{"search", "search"}
	pRerank            = param{"rerank", "rerank"}
	pStrategy          = param{"strategy", "strategy"}
	pIndexName         = param{"index_name", "indexName"}
	pAliasName         = param{"alias_name", "aliasName"}
)
