package writers

import (
	"io"

	"gibbs/internal/pretty"
	"gibbs/pkg/api"
)

func init() {
	RegisterResult("pretty", func(w io.Writer, res api.ResultV1, _ bool) error {
		if err := writeSummary(w, res); err != nil {
			return err
		}
		_, err := io.WriteString(w, pretty.RenderAlignment(res))
		return err
	})
}
