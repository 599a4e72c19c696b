package types

// Migration is a SQL script embedded by a component. Prefix is used to namespace
// the tables when several components share the same DB file
type Migration struct {
	ID     string
	SQL    string
	Prefix string
}
