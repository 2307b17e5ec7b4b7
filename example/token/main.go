// Command token prints an operator JWT for the protected maze routes, signed with
// JWT_SECRET and JWT_ISSUER from the environment.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/config"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
)

func main() {
	var ttl time.Duration
	flag.DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	flag.Parse()

	appLogger, _ := logger.New("TOKEN", logger.ColorBlue, os.Stderr)

	ts, err := token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating JWT tokenizer: %v", err))
		os.Exit(1)
	}

	tok, err := ts.Generate(map[string]interface{}{"sub": identity.OperatorSubject}, ttl)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Signing token: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("operator token valid for %s", ttl))
	fmt.Println(tok)
}
