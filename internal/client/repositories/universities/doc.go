// Package universities keeps the offline copy of the university catalogue.
//
// The catalogue is refreshed as a whole: every successful online listing
// replaces the table content in one transaction, so readers never observe a
// half-written list. Each row stores the JSON document of a
// models.University; the name column exists only for ordering.
//
//	repo := universities.NewSQLiteRepository(db)
//	_ = repo.ReplaceAll(ctx, list)
//	cached, _ := repo.GetAll(ctx)
//	one, err := repo.GetByID(ctx, 7) // common.ErrorNotFound when absent
package universities
