// Package stream provides composable, pull-based lazy sequences.
//
// Streams are lazy — no work happens until values are pulled via
// Collect, ForEach, or the raw Iterator. Each stage pulls from the
// previous stage on demand, so filters and transforms never materialize
// intermediate slices.
//
//	src := stream.FromSlice([]int{1, 2, 3, 4, 5})
//	evens := stream.Filter(src, func(n int) bool { return n%2 == 0 })
//	doubled := stream.Map(evens, func(_ context.Context, n int) (int, error) {
//	    return n * 2, nil
//	})
//	results, _ := stream.Collect(ctx, doubled)
//
// The textstat package builds its record filtering, column extraction,
// and token normalization on these operators.
package stream
