package knowledge

// techniques is the static catalog extracted from "The Prompt Report".
// Declaration order matters: substring fallback matching returns the first
// technique whose name contains the query.
var techniques = []Technique{
	{
		Name:          "Few-Shot Prompting",
		Category:      CategoryInContextLearning,
		Description:   "The paradigm where the GenAI learns to complete a task with only a few examples (exemplars). A special case of Few-Shot Learning but does not require updating model parameters.",
		HowToApply:    "Include multiple input-output exemplars in the prompt following formats like 'Q: {input}, A: {label}'. Consider quantity, ordering, label distribution, label quality, format, and similarity.",
		Benefits:      "Enables models to learn new tasks without parameter updates. Performance generally improves with more exemplars, especially in larger models.",
		Prerequisites: "Training dataset with input-output pairs to use as exemplars",
		Related:       []string{"Zero-Shot Prompting", "Chain-of-Thought", "In-Context Learning"},
	},
	{
		Name:          "K-Nearest Neighbor (KNN)",
		Category:      CategoryInContextLearning,
		SubCategory:   "Exemplar Selection",
		Description:   "Selects exemplars similar to the test input to boost performance as part of few-shot prompting.",
		HowToApply:    "Use similarity metrics to select exemplars from training data that are most similar to the test input.",
		Benefits:      "Effective for improving performance by providing relevant demonstrations.",
		Prerequisites: "Training dataset and similarity metric (e.g., embedding-based)",
		Related:       []string{"Few-Shot Prompting", "Vote-K", "Exemplar Selection"},
	},
	{
		Name:          "Self-Generated In-Context Learning (SG-ICL)",
		Category:      CategoryInContextLearning,
		SubCategory:   "Exemplar Generation",
		Description:   "Leverages a GenAI to automatically generate exemplars when training data is unavailable.",
		HowToApply:    "Prompt the GenAI to generate input-output examples for the target task, then use these generated examples as few-shot exemplars.",
		Benefits:      "Better than zero-shot scenarios when training data is unavailable, though not as effective as actual data.",
		Prerequisites: "Target task description, no training data required",
		Related:       []string{"Few-Shot Prompting", "Zero-Shot Prompting"},
	},
	{
		Name:          "Unified Demonstration Retrieval (UDR)",
		Category:      CategoryInContextLearning,
		SubCategory:   "Exemplar Selection",
		Description:   "Trains a single retrieval model across many tasks to select effective demonstrations for in-context learning.",
		HowToApply:    "Use a learned retriever, trained with language-model feedback, to pick demonstrations for the test input instead of hand-picking exemplars.",
		Benefits:      "Outperforms per-task exemplar selection baselines across a wide range of tasks.",
		Prerequisites: "A trained demonstration retriever and a candidate exemplar pool",
		Related:       []string{"K-Nearest Neighbor (KNN)", "Few-Shot Prompting"},
	},
	{
		Name:          "Zero-Shot Prompting",
		Category:      CategoryZeroShot,
		Description:   "Prompting that uses no exemplars: the model completes the task from the instruction alone. The baseline against which in-context learning techniques are measured.",
		HowToApply:    "State the task directly and completely. Be explicit about the desired output, format, and constraints; do not include examples.",
		Benefits:      "No exemplar collection required; works for any task that the model can complete from instructions alone.",
		Prerequisites: "A clear, self-contained task instruction",
		Related:       []string{"Few-Shot Prompting", "Role Prompting"},
	},
	{
		Name:          "Role Prompting",
		Category:      CategoryZeroShot,
		Description:   "Assigns a specific role to the GenAI in the prompt, also known as persona prompting. Creates more desirable outputs for open-ended tasks and may improve accuracy on benchmarks.",
		HowToApply:    "Include role assignment in prompt such as 'Act like Madonna' or 'You are a travel writer'. Specify the persona before the main instruction.",
		Benefits:      "Creates more desirable outputs for open-ended tasks and in some cases may improve accuracy on benchmarks.",
		Prerequisites: "Definition of desired role or persona",
		Related:       []string{"Style Prompting", "Persona Prompting"},
	},
	{
		Name:          "Style Prompting",
		Category:      CategoryZeroShot,
		Description:   "Involves specifying the desired style, tone, or genre in the prompt to shape the output of a GenAI. Similar effect can be achieved using role prompting.",
		HowToApply:    "Include style specifications in the prompt such as 'Write in a formal tone', 'Use casual language', or 'Write in the style of a news article'.",
		Benefits:      "Shapes output to match desired style, tone, or genre requirements.",
		Prerequisites: "Definition of desired style characteristics",
		Related:       []string{"Role Prompting", "Style Instructions"},
	},
	{
		Name:          "Emotion Prompting",
		Category:      CategoryZeroShot,
		Description:   "Incorporates phrases of psychological relevance to humans (e.g., 'This is important to my career') into the prompt, which may lead to improved LLM performance.",
		HowToApply:    "Add emotionally relevant phrases to prompts such as 'This is important to my career', 'Take your time', or 'This will help many people'.",
		Benefits:      "May lead to improved LLM performance on benchmarks and open-ended text generation.",
		Prerequisites: "Understanding of psychologically relevant phrases",
		Related:       []string{"Role Prompting", "Style Prompting"},
	},
	{
		Name:          "Rephrase and Respond (RaR)",
		Category:      CategoryZeroShot,
		Description:   "Instructs the LLM to rephrase and expand the question before generating the final answer.",
		HowToApply:    "Add a phrase to the question such as 'Rephrase and expand the question, and respond'. Can be done in a single pass or with the new question passed separately.",
		Benefits:      "Has demonstrated improvements on multiple benchmarks by encouraging better understanding of the question.",
		Prerequisites: "Original question or prompt",
		Related:       []string{"Re-reading (RE2)", "Question reformulation"},
	},
	{
		Name:          "Re-reading (RE2)",
		Category:      CategoryZeroShot,
		Description:   "Adds the phrase 'Read the question again:' to the prompt in addition to repeating the question.",
		HowToApply:    "Add 'Read the question again:' followed by repeating the original question.",
		Benefits:      "Simple technique that has shown improvement in reasoning benchmarks, especially with complex questions.",
		Prerequisites: "Original question",
		Related:       []string{"Rephrase and Respond (RaR)", "Question repetition"},
	},
	{
		Name:          "Instruction Following",
		Category:      CategoryZeroShot,
		Description:   "Phrases the task as explicit, ordered instructions the model must follow, making constraints and deliverables unambiguous.",
		HowToApply:    "State instructions as a numbered or clearly separated list, covering the output format, constraints, and acceptance criteria up front.",
		Benefits:      "Reduces ambiguity and improves adherence to constraints in instruction-tuned models.",
		Prerequisites: "A task that can be expressed as explicit instructions",
		Related:       []string{"Zero-Shot Prompting", "Output Formatting"},
	},
	{
		Name:          "Chain-of-Thought (CoT) Prompting",
		Category:      CategoryThoughtGeneration,
		Description:   "Leverages few-shot prompting to encourage the LLM to express its thought process before delivering its final answer. Significantly enhances performance in mathematics and reasoning tasks.",
		HowToApply:    "Include exemplars that feature a question, a reasoning path, and the correct answer. Show the model how to think step by step through examples.",
		Benefits:      "Significantly enhances the LLM's performance in mathematics and reasoning tasks.",
		Prerequisites: "Exemplars with reasoning paths",
		Related:       []string{"Zero-Shot CoT", "Few-Shot CoT", "Auto-CoT"},
	},
	{
		Name:          "Zero-Shot CoT",
		Category:      CategoryThoughtGeneration,
		SubCategory:   "Chain-of-Thought (CoT)",
		Description:   "A straightforward version of Chain-of-Thought that encourages the LLM to express its thought process without requiring any exemplars.",
		HowToApply:    "Append a thought-inducing phrase to the prompt, such as 'Let's think step by step.' or 'Let's work this out in a step by step way to be sure we have the right answer'.",
		Benefits:      "Enhances LLM performance in mathematics and reasoning tasks; requires no exemplars and is generally task agnostic.",
		Prerequisites: "N/A (zero exemplars needed)",
		Related:       []string{"Chain-of-Thought (CoT) Prompting", "Step-Back Prompting", "Thread-of-Thought (ThoT) Prompting"},
	},
	{
		Name:          "Step-Back Prompting",
		Category:      CategoryThoughtGeneration,
		SubCategory:   "Chain-of-Thought (CoT)",
		Description:   "A modification of CoT where the LLM is first asked a generic, high-level question about relevant concepts or facts before delving into reasoning.",
		HowToApply:    "Step 1: Ask a high-level, generic question about relevant concepts. Step 2: Use that information for detailed reasoning on the original question.",
		Benefits:      "Has improved performance significantly on multiple reasoning benchmarks.",
		Prerequisites: "Complex reasoning question that can benefit from high-level concept review",
		Related:       []string{"Zero-Shot CoT", "Analogical Prompting"},
	},
	{
		Name:          "Thread-of-Thought (ThoT) Prompting",
		Category:      CategoryThoughtGeneration,
		SubCategory:   "Chain-of-Thought (CoT)",
		Description:   "Consists of an improved thought inducer for CoT reasoning, more sophisticated than simple 'Let's think step by step.'",
		HowToApply:    "Use 'Walk me through this context in manageable parts step by step, summarizing and analyzing as we go.' instead of the plain step-by-step inducer.",
		Benefits:      "Works well in question-answering and retrieval settings, especially with large, complex contexts.",
		Prerequisites: "Complex contexts or lengthy materials to analyze",
		Related:       []string{"Zero-Shot CoT", "Chain-of-Thought (CoT) Prompting"},
	},
	{
		Name:          "Generated Knowledge Prompting",
		Category:      CategoryThoughtGeneration,
		Description:   "First prompts the model to generate relevant background knowledge, then conditions the final answer on that generated knowledge.",
		HowToApply:    "Step 1: Ask the model what facts or background knowledge are relevant to the task. Step 2: Include the generated knowledge in the prompt for the final answer.",
		Benefits:      "Improves commonsense reasoning by surfacing relevant facts before answering.",
		Prerequisites: "Tasks where background knowledge helps",
		Related:       []string{"Chain-of-Thought (CoT) Prompting", "Knowledge integration"},
	},
	{
		Name:          "Least-to-Most Prompting",
		Category:      CategoryDecomposition,
		Description:   "Starts by prompting an LLM to break a given problem into sub-problems without solving them, then solves them sequentially, appending model responses to the prompt each time.",
		HowToApply:    "Step 1: Prompt the LLM to break the problem into sub-problems. Step 2: Solve sub-problems sequentially, appending each response to the prompt for context.",
		Benefits:      "Has shown significant improvements in tasks involving symbolic manipulation, compositional generalization, and mathematical reasoning.",
		Prerequisites: "Complex problems that can be decomposed into sub-problems",
		Related:       []string{"Decomposed Prompting (DECOMP)", "Sub-question generation"},
	},
	{
		Name:          "Decomposed Prompting (DECOMP)",
		Category:      CategoryDecomposition,
		Description:   "Few-shot prompts an LLM to show it how to use certain functions. The LLM breaks down its original problem into sub-problems which it sends to different functions.",
		HowToApply:    "Show the LLM how to use functions through few-shot examples; the LLM then decomposes problems and sends sub-problems to the appropriate functions.",
		Benefits:      "Has shown improved performance over Least-to-Most prompting on some tasks.",
		Prerequisites: "Set of available functions and few-shot examples of their usage",
		Related:       []string{"Least-to-Most Prompting", "Tool use"},
	},
	{
		Name:          "Plan-and-Solve Prompting",
		Category:      CategoryDecomposition,
		Description:   "Consists of an improved Zero-Shot CoT prompt that focuses on planning before execution.",
		HowToApply:    "Use the prompt: 'Let's first understand the problem and devise a plan to solve it. Then, let's carry out the plan and solve the problem step by step'.",
		Benefits:      "Generates more robust reasoning processes than standard Zero-Shot CoT on multiple reasoning datasets.",
		Prerequisites: "Complex reasoning problems that benefit from planning",
		Related:       []string{"Zero-Shot CoT", "Planning-based approaches"},
	},
	{
		Name:          "Self-Consistency",
		Category:      CategoryEnsembling,
		Description:   "Samples multiple reasoning paths and selects the most consistent answer through majority voting.",
		HowToApply:    "Generate multiple reasoning paths for the same problem (typically with temperature > 0), then select the answer that appears most frequently across the paths.",
		Benefits:      "Improves reliability and accuracy by leveraging multiple reasoning attempts.",
		Prerequisites: "Problem that can be solved multiple ways",
		Related:       []string{"Chain-of-Thought (CoT) Prompting", "Majority voting"},
	},
	{
		Name:          "Mixture of Reasoning Experts (MoRE)",
		Category:      CategoryEnsembling,
		Description:   "Creates a set of diverse reasoning experts using different specialized prompts for different reasoning types, then selects the best answer based on an agreement score.",
		HowToApply:    "Create specialized prompts for different reasoning types (retrieval augmentation for factual, CoT for multi-hop math, generated knowledge for commonsense). Select the best answer by agreement score.",
		Benefits:      "Leverages specialized reasoning approaches for different problem types.",
		Prerequisites: "Problems that can benefit from different reasoning approaches",
		Related:       []string{"Self-Consistency", "Specialized prompting"},
	},
	{
		Name:          "Self-Calibration",
		Category:      CategorySelfCriticism,
		Description:   "First prompts an LLM to answer a question, then builds a new prompt asking whether the answer is correct for gauging confidence levels.",
		HowToApply:    "Step 1: Prompt the LLM to answer the question. Step 2: Create a new prompt with the question, the LLM's answer, and an instruction asking if the answer is correct.",
		Benefits:      "Useful for gauging confidence levels and deciding when to accept or revise the original answer.",
		Prerequisites: "Initial question and model response",
		Related:       []string{"Self-Refine", "Confidence estimation"},
	},
	{
		Name:          "Self-Refine",
		Category:      CategorySelfCriticism,
		Description:   "Iterative framework where the LLM provides feedback on its own answer, then improves the answer based on the feedback until a stopping condition is met.",
		HowToApply:    "Step 1: Get an initial answer. Step 2: Prompt the same LLM for feedback. Step 3: Prompt the LLM to improve the answer based on the feedback. Step 4: Repeat until the stopping condition.",
		Benefits:      "Has demonstrated improvement across a range of reasoning, coding, and generation tasks.",
		Prerequisites: "Initial response and stopping criteria",
		Related:       []string{"Self-Calibration", "Iterative improvement"},
	},
}
