// Package gotrans translates editor text through several translation providers
// at once and renders the merged answer as markdown blocks.
//
// Gotrans queries every enabled provider concurrently (AWS Translate, the
// Google web endpoint, an OpenAI-compatible model), joins the answers and
// normalizes their different response shapes into one ordered list of
// RenderBlocks suitable for a floating editor window.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/gotrans"
//	    "github.com/ZaguanLabs/gotrans/provider"
//	    "github.com/ZaguanLabs/gotrans/transport"
//	)
//
//	func main() {
//	    httpClient, err := transport.Build("", 5*time.Second)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Create a ready provider client
//	    google, err := provider.OpenGoogle(provider.GoogleConfig{
//	        Source:     "en",
//	        Target:     "es",
//	        HTTPClient: httpClient,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Create translator
//	    t := gotrans.NewTranslator([]gotrans.ProviderID{gotrans.ProviderGoogle},
//	        gotrans.WithClient(gotrans.ProviderGoogle, google),
//	    )
//
//	    blocks, err := t.Translate(context.Background(), "hello")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(gotrans.JoinBlocks(blocks))
//	}
package gotrans
