// Package tmcache provides a translation memory: a cache-aside layer that
// sits in front of an expensive AI translation call and memoizes results
// keyed by normalized source text plus target language.
//
// The memory is backed by Redis when a server is reachable, by a durable
// local JSON file when it is not, and keeps working without any cache at
// all when neither is available. Backend failures never surface to
// callers; only a failed translation callback does.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/subtitlestudio/tmcache"
//	    "github.com/subtitlestudio/tmcache/provider"
//	)
//
//	func main() {
//	    tm := tmcache.New(tmcache.Config{
//	        RedisURL: os.Getenv("REDIS_URL"),
//	    })
//	    ctx := context.Background()
//	    tm.Connect(ctx)
//	    defer tm.Close()
//
//	    p := provider.NewOpenAI(provider.OpenAIConfig{APIKey: os.Getenv("OPENAI_API_KEY")})
//
//	    translated, err := tm.GetOrCompute(ctx, "Hello world", "tr",
//	        tmcache.Compute(p, tmcache.Request{Text: "Hello world", TargetLang: "tr"}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(translated)
//	}
package tmcache
