package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"blogql/app/graphql"
	"blogql/app/repositories"
	"blogql/app/resolvers"
	"blogql/app/routes"
	"blogql/app/services"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogql version %s\n", cliVersion)
	case "serve":
		serve(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogql <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve [--addr :4000] [--seed]  Run the GraphQL server over a fresh
                                 in-memory store. --seed loads the demo
                                 dataset.
`
	fmt.Println(helpText)
}

// serve wires the store, the integrity services, the resolvers and the
// GraphQL executor together and runs the HTTP server.
func serve(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":4000", "listen address")
	seed := fs.Bool("seed", false, "load the demo dataset on startup")
	fs.Parse(args)

	db, err := repositories.Open()
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer db.Close()

	if *seed {
		if err := repositories.Seed(db); err != nil {
			log.Fatalf("failed to seed store: %v", err)
		}
	}

	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	userService := services.NewUserService(userRepo, postRepo, commentRepo)
	postService := services.NewPostService(userRepo, postRepo, commentRepo)
	commentService := services.NewCommentService(userRepo, postRepo, commentRepo)
	resolver := resolvers.NewResolver(userRepo, postRepo, commentRepo)
	executor := graphql.NewExecutor(userService, postService, commentService, resolver)

	router := routes.SetupRoutes(executor)

	log.Printf("The server is up on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, router))
}
