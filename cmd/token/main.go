// token выпускает bearer-токен для доступа к /api/* при заданном JWT_SECRET
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ibeloyar/bcproxy/internal/model"
	"github.com/ibeloyar/bcproxy/pgk/auth"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	client := flag.String("c", "", "Client name stored in the token")
	secret := flag.String("j", os.Getenv("JWT_SECRET"), "Secret for bearer tokens (default $JWT_SECRET)")
	ttl := flag.Duration("ttl", 0, "Token lifetime (0 - never expires)")
	flag.Parse()

	if *client == "" || *secret == "" {
		flag.Usage()
		os.Exit(2)
	}

	token, err := auth.GenerateBearerToken(model.TokenInfo{Client: *client}, *ttl, *secret)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
	if *ttl > 0 {
		fmt.Fprintf(os.Stderr, "expires at %s\n", time.Now().Add(*ttl).Format(time.RFC3339))
	}
}
