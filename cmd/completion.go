package cmd

import (
	"github.com/etnz/stocksim/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the application, to be passed to complete.Complete.
func Completion() *complete.Command {
	var names predict.Set
	sub := make(map[string]*complete.Command)
	for _, c := range Commands() {
		names = append(names, c.Name())
		sub[c.Name()] = &complete.Command{}
	}

	risks := predict.Set{"1", "2", "3", "4", "5"}
	sub["add"].Flags = map[string]complete.Predictor{"p": predict.Something, "r": risks, "c": predict.Something}
	sub["simulate"].Flags = map[string]complete.Predictor{"d": predict.Something, "html": predict.Nothing}
	sub["show"].Flags = map[string]complete.Predictor{"html": predict.Nothing}
	sub["advise"].Flags = map[string]complete.Predictor{"d": predict.Something}
	sub["topic"].Args = predict.Set(append(docs.GetAllTopics(), docs.Readme))

	sub["help"] = &complete.Command{Args: names}
	sub["flags"] = &complete.Command{}
	sub["commands"] = &complete.Command{}

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"portfolio-file": predict.Files("*.json"),
			"seed":           predict.Something,
		},
	}
}
