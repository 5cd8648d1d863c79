package repoargs

type RepositoryName string

const (
	SupplierRepoName    RepositoryName = "supplier"
	TransactionRepoName RepositoryName = "transaction"
	StatsRepoName       RepositoryName = "stats"
)
