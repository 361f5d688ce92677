// Package cinedex embeds the cinedex movie catalog in a Go program.
//
// The client loads a dataset once and answers the same questions as the HTTP
// API: list every movie, look one up by id, filter by category, and run a
// keyword search expanded with synonyms.
//
//	client, _ := cinedex.New(ctx, cinedex.WithDataset("Dataset/netflix_titles.csv"))
//	defer client.Close()
//
//	dramas, _ := client.Movies().ByCategory(ctx, "drama")
//	answer, _ := client.Chatbot(ctx, "something funny")
//	fmt.Println(answer.Message, len(answer.Movies))
//
// Extra synonym providers plug in with WithSynonymSource; a Redis cache in
// front of them is enabled with WithRedisCache.
package cinedex
