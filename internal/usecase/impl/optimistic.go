package impl

// mutateOptimistically applies next before commit runs and restores prev
// when commit fails. The commit error is returned unchanged.
func mutateOptimistically[S any](apply func(S), prev, next S, commit func() error) error {
	apply(next)

	if err := commit(); err != nil {
		apply(prev)

		return err
	}

	return nil
}
