package valueprop

import "fmt"

// Each function returns five interchangeable phrasings for one field.

func headlines(c canvas) []string {
	return []string{
		fmt.Sprintf("%s: The Smarter Way to %s", c.name, capitalize(c.job)),
		fmt.Sprintf("Stop Struggling With %s", capitalize(c.pain)),
		fmt.Sprintf("Get %s Without the Hassle", capitalize(c.gain)),
		fmt.Sprintf("%s Made Simple for %s", capitalize(c.job), capitalize(c.audience)),
		fmt.Sprintf("The %s Partner Built Around %s", capitalize(c.industry), capitalize(c.gain)),
	}
}

func subheadlines(c canvas) []string {
	return []string{
		fmt.Sprintf("%s helps %s %s with %s.", c.name, c.audience, c.job, c.feature),
		fmt.Sprintf("Say goodbye to %s and hello to %s.", c.pain, c.gain),
		fmt.Sprintf("Everything you need to %s, in one place.", c.job),
		fmt.Sprintf("Built for %s who want %s.", c.audience, c.gain),
		fmt.Sprintf("%s delivers %s so you can focus on what matters.", capitalize(c.product), c.creator),
	}
}

func valueStatements(c canvas) []string {
	return []string{
		fmt.Sprintf("We help %s %s by providing %s.", c.audience, c.job, c.reliever),
		fmt.Sprintf("%s turns %s into %s.", c.name, c.pain, c.gain),
		fmt.Sprintf("With %s, %s finally get %s.", c.product, c.audience, c.gain),
		fmt.Sprintf("Our %s removes %s so you can %s.", c.reliever, c.pain, c.job),
		fmt.Sprintf("%s combines %s and %s to help you %s.", c.name, c.reliever, c.creator, c.job),
	}
}

func audienceStatements(c canvas) []string {
	return []string{
		fmt.Sprintf("Designed for %s in %s.", c.audience, c.industry),
		fmt.Sprintf("Perfect for %s who need to %s.", c.audience, c.job),
		fmt.Sprintf("If you are tired of %s, %s was built for you.", c.pain, c.name),
		fmt.Sprintf("Ideal for %s looking for %s.", c.audience, c.gain),
		fmt.Sprintf("Trusted by %s across %s.", c.audience, c.industry),
	}
}

func problemStatements(c canvas) []string {
	return []string{
		fmt.Sprintf("Most %s struggle with %s.", c.audience, c.pain),
		fmt.Sprintf("Trying to %s often means dealing with %s.", c.job, c.pain),
		fmt.Sprintf("%s holds %s back from %s.", capitalize(c.pain), c.audience, c.gain),
		fmt.Sprintf("In %s, %s costs time and money.", c.industry, c.pain),
		fmt.Sprintf("Existing options leave %s stuck with %s.", c.audience, c.pain),
	}
}

func solutionStatements(c canvas) []string {
	return []string{
		fmt.Sprintf("%s solves this with %s.", c.name, c.reliever),
		fmt.Sprintf("Our %s gives you %s and %s.", c.product, c.reliever, c.creator),
		fmt.Sprintf("With %s, you can %s without %s.", c.reliever, c.job, c.pain),
		fmt.Sprintf("%s pairs %s with %s for lasting results.", c.name, c.feature, c.creator),
		fmt.Sprintf("We replace %s with %s.", c.pain, c.gain),
	}
}

func differentiators(c canvas) []string {
	return []string{
		fmt.Sprintf("Unlike other options, %s offers %s.", c.name, c.feature),
		fmt.Sprintf("What sets us apart: %s.", c.feature),
		fmt.Sprintf("Only %s combines %s with %s.", c.name, c.feature, c.creator),
		fmt.Sprintf("%s is built around %s, not generic features.", c.name, c.feature),
		fmt.Sprintf("Our %s means you get %s faster than anywhere else.", c.feature, c.gain),
	}
}

func callsToAction(c canvas) []string {
	return []string{
		"Get started today",
		fmt.Sprintf("Start getting %s now", c.gain),
		fmt.Sprintf("Try %s free", c.name),
		"Book your free consultation",
		fmt.Sprintf("See how %s can help you %s", c.name, c.job),
	}
}
