// Package model provides the data structures shared by the pipeline package and its options.
// It defines the steps of a pipeline, their details, and the hooks a pipeline option implements.
package model
