// Package main implements very simple grpc client that can be used for testing ghroast grpc server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	appGrpc "github.com/m-zajac/ghroast/internal/api/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var (
	serverAddr = flag.String("s", "localhost:9090", "The server address in the format of host:port")
	username   = flag.String("u", "", "GitHub username")
	timeout    = flag.Duration("t", 90*time.Second, "Request timeout")
)

func main() {
	flag.Parse()
	if *username == "" {
		log.Fatal("username is required")
	}

	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()
	client := appGrpc.NewRoasterClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	resp, err := client.Roast(ctx, wrapperspb.String(*username))
	if err != nil {
		log.Fatalf("server response error: %v", err)
	}

	fields := resp.GetFields()
	fmt.Printf("%s (@%s)\n", fields["name"].GetStringValue(), fields["login"].GetStringValue())
	fmt.Printf("Contributions: %.0f | Stars: %.0f | Roasts served: %.0f\n",
		fields["totalContributions"].GetNumberValue(),
		fields["totalStars"].GetNumberValue(),
		fields["totalRoasts"].GetNumberValue(),
	)
	fmt.Printf("\n%s\n", fields["roast"].GetStringValue())
}
