// MIT License
//
// Copyright (c) 2020 codingfinest
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

//Package main provides the graphwalk CLI, a thin front-end over the graphwalk client.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	graphwalk "github.com/disneystreaming/neo4j-go-graphwalk"
	"github.com/disneystreaming/neo4j-go-graphwalk/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "graphwalk",
		Short:         "Query and mutate a Neo4j graph from path and node descriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("uri", "", "Database URI (overrides config and NEO4J)")
	rootCmd.PersistentFlags().String("user", "", "Database user")
	rootCmd.PersistentFlags().String("password", "", "Database password")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every statement")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "count <label>",
		Short: "Print the number of nodes with a label",
		Args:  cobra.ExactArgs(1),
		RunE:  runCount,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "traverse <path.yaml>",
		Short: "Match a path and print the nodes bound to its last step",
		Args:  cobra.ExactArgs(1),
		RunE:  runTraverse,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "write-nodes <nodes.yaml>",
		Short: "Upsert every node listed in a file, in order",
		Args:  cobra.ExactArgs(1),
		RunE:  runWriteNodes,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "delete-node <label> <id>",
		Short: "Delete a node and all of its relationships",
		Args:  cobra.ExactArgs(2),
		RunE:  runDeleteNode,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func openGraph(cmd *cobra.Command) (*graphwalk.Graph, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, os.Getenv)
	if err != nil {
		return nil, err
	}
	if uri, _ := cmd.Flags().GetString("uri"); uri != "" {
		cfg.URI = config.NormalizeURI(uri)
	}
	if user, _ := cmd.Flags().GetString("user"); user != "" {
		cfg.Username = user
	}
	if password, _ := cmd.Flags().GetString("password"); password != "" {
		cfg.Password = password
	}

	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return graphwalk.Open(cfg, graphwalk.WithLogger(logger))
}

func runCount(cmd *cobra.Command, args []string) error {
	g, err := openGraph(cmd)
	if err != nil {
		return err
	}
	defer g.Close()

	count, err := g.GetNodeCount(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), count)
	return nil
}

func runTraverse(cmd *cobra.Command, args []string) error {
	path, err := readPathFile(args[0])
	if err != nil {
		return err
	}
	g, err := openGraph(cmd)
	if err != nil {
		return err
	}
	defer g.Close()

	nodes, _, err := g.GetNodes(path)
	if err != nil {
		return err
	}
	return yaml.NewEncoder(cmd.OutOrStdout()).Encode(nodes)
}

func runWriteNodes(cmd *cobra.Command, args []string) error {
	nodes, err := readNodesFile(args[0])
	if err != nil {
		return err
	}
	g, err := openGraph(cmd)
	if err != nil {
		return err
	}
	defer g.Close()

	written, err := g.WriteNodes(nodes)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d of %d nodes\n", written, len(nodes))
	return err
}

func runDeleteNode(cmd *cobra.Command, args []string) error {
	g, err := openGraph(cmd)
	if err != nil {
		return err
	}
	defer g.Close()

	return g.DeleteNodeAndConnections(graphwalk.NodeDescriptor{
		Label: args[0],
		Props: graphwalk.Props{"id": args[1]},
	})
}
