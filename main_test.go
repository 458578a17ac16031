package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoutesDoc(t *testing.T) {
	doc := routesDoc()

	require.Contains(t, doc, "Routes of the articles service.")
	require.Contains(t, doc, "/ping")
	require.Contains(t, doc, "/articles/*")
	require.Contains(t, doc, "/{articleId}")
}
