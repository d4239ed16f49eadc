package indexer

// PlanBatches partitions pages into contiguous batches of batchSize pages,
// the last batch holding the remainder. The batches cover every page exactly
// once, in order.
func PlanBatches(pages []Page, batchSize int) ([]Batch, error) {
	if batchSize < 1 {
		return nil, ErrInvalidBatchSize
	}

	var batches []Batch
	for i := 0; i < len(pages); i += batchSize {
		end := min(i+batchSize, len(pages))
		batches = append(batches, Batch(pages[i:end]))
	}
	return batches, nil
}

// PageNumbers lists the batch's page numbers in order.
func (b Batch) PageNumbers() []int {
	nums := make([]int, len(b))
	for i, p := range b {
		nums[i] = p.Number
	}
	return nums
}
