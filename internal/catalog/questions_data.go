package catalog

import "github.com/hri-lab/robot-survey/internal/models"

// The 27-item robot perception questionnaire. Three main scales:
// perceptual potential, behavioral potential, perception/behavior causality.
var assessmentQuestions = []models.Question{
	// 一、感知潜能
	{ID: "q1_1_1", Category: "一、感知潜能", SubCategory: "感知接收能力", Text: "它可以观察周围环境。"},
	{ID: "q1_1_2", Category: "一、感知潜能", SubCategory: "感知接收能力", Text: "它可以了解周围发生的变化。"},
	{ID: "q1_1_3", Category: "一、感知潜能", SubCategory: "感知接收能力", Text: "它可以察觉附近新出现的事物。"},
	{ID: "q1_1_4", Category: "一、感知潜能", SubCategory: "感知接收能力", Text: "它可以察觉我的反馈。"},
	{ID: "q1_2_1", Category: "一、感知潜能", SubCategory: "共享注意能力", Text: "它知道我在注意什么。"},
	{ID: "q1_2_2", Category: "一、感知潜能", SubCategory: "共享注意能力", Text: "它可以预测我将注意什么。"},
	{ID: "q1_2_3", Category: "一、感知潜能", SubCategory: "共享注意能力", Text: "它能理解我们正在关注相同的事物。"},
	{ID: "q1_2_4", Category: "一、感知潜能", SubCategory: "共享注意能力", Text: "它理解实现协作需要我们关注相同的目标。"},
	{ID: "q1_3_1", Category: "一、感知潜能", SubCategory: "感知表达能力", Text: "我很容易看出它是否在观察周围环境。"},
	{ID: "q1_3_2", Category: "一、感知潜能", SubCategory: "感知表达能力", Text: "当它注意到某个东西时，会很明显的表现出来。"},
	{ID: "q1_3_3", Category: "一、感知潜能", SubCategory: "感知表达能力", Text: "我很容易看出它正在注意什么。"},
	{ID: "q1_3_4", Category: "一、感知潜能", SubCategory: "感知表达能力", Text: "我可以根据它的表现判断它是否会调整注意的对象。"},
	// 二、行为潜能
	{ID: "q2_1_1", Category: "二、行为潜能", SubCategory: "自主性", Text: "它可以自主设置行动目标。"},
	{ID: "q2_1_2", Category: "二、行为潜能", SubCategory: "自主性", Text: "它可以自主设计行动计划来实现目标。"},
	{ID: "q2_1_3", Category: "二、行为潜能", SubCategory: "自主性", Text: "它可以做出行动。"},
	{ID: "q2_1_4", Category: "二、行为潜能", SubCategory: "自主性", Text: "它可以自主调整行为。"},
	{ID: "q2_2_1", Category: "二、行为潜能", SubCategory: "社会交互性", Text: "它想与我互动。"},
	{ID: "q2_2_2", Category: "二、行为潜能", SubCategory: "社会交互性", Text: "它可以自主设计怎样与我互动。"},
	{ID: "q2_2_3", Category: "二、行为潜能", SubCategory: "社会交互性", Text: "它可以通过行动与我互动。"},
	{ID: "q2_2_4", Category: "二、行为潜能", SubCategory: "社会交互性", Text: "它可以预测我对于它的行动的反馈。"},
	{ID: "q2_2_5", Category: "二、行为潜能", SubCategory: "社会交互性", Text: "它可以理解我做出的言语或行为反馈。"},
	{ID: "q2_2_6", Category: "二、行为潜能", SubCategory: "社会交互性", Text: "它可以根据我的反馈调整它的行为。"},
	{ID: "q2_2_7", Category: "二、行为潜能", SubCategory: "社会交互性", Text: "我想与它互动。"},
	// 三、感知/行为因果性
	{ID: "q3_1_1", Category: "三、感知/行为因果性", SubCategory: "感知/行为因果性", Text: "它感知到物体之后会做出相应的行为。"},
	{ID: "q3_1_2", Category: "三、感知/行为因果性", SubCategory: "感知/行为因果性", Text: "它会先观察周围情况再采取行动。"},
	{ID: "q3_1_3", Category: "三、感知/行为因果性", SubCategory: "感知/行为因果性", Text: "它在得到新信息之后会调整自己的行为。"},
	{ID: "q3_1_4", Category: "三、感知/行为因果性", SubCategory: "感知/行为因果性", Text: "它会根据周围情况选择合适的行为，而不是随意行动。"},
}

// InitialSliderValue is the neutral midpoint every slider starts at.
const InitialSliderValue = 50
