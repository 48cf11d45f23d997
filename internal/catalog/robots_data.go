package catalog

import "github.com/hri-lab/robot-survey/internal/models"

// Static robot-image list, generated from the robot-images asset directory.
var defaultRobots = []models.Robot{
	{ID: "robot001", ImageRef: "/robot-images/1_jia_jia_robot.jpg", Name: "jia-jia-robot"},
	{ID: "robot002", ImageRef: "/robot-images/2_asimo.jpg", Name: "asimo"},
	{ID: "robot003", ImageRef: "/robot-images/3_pepper.jpg", Name: "pepper"},
	{ID: "robot004", ImageRef: "/robot-images/4_nao.jpg", Name: "nao"},
	{ID: "robot005", ImageRef: "/robot-images/5_atlas.jpg", Name: "atlas"},
	{ID: "robot006", ImageRef: "/robot-images/6_spot.jpg", Name: "spot"},
	{ID: "robot007", ImageRef: "/robot-images/7_sophia.jpg", Name: "sophia"},
	{ID: "robot008", ImageRef: "/robot-images/8_icub.jpg", Name: "icub"},
	{ID: "robot009", ImageRef: "/robot-images/9_buddy.jpg", Name: "buddy"},
	{ID: "robot010", ImageRef: "/robot-images/10_kuri.jpg", Name: "kuri"},
	{ID: "robot011", ImageRef: "/robot-images/11_jibo.jpg", Name: "jibo"},
	{ID: "robot012", ImageRef: "/robot-images/12_aibo.jpg", Name: "aibo"},
	{ID: "robot013", ImageRef: "/robot-images/13_qrio.jpg", Name: "qrio"},
	{ID: "robot014", ImageRef: "/robot-images/14_robovie.jpg", Name: "robovie"},
	{ID: "robot015", ImageRef: "/robot-images/15_erica.jpg", Name: "erica"},
	{ID: "robot016", ImageRef: "/robot-images/16_geminoid_hi.jpg", Name: "geminoid-hi"},
	{ID: "robot017", ImageRef: "/robot-images/17_paro.jpg", Name: "paro"},
	{ID: "robot018", ImageRef: "/robot-images/18_reachy.jpg", Name: "reachy"},
	{ID: "robot019", ImageRef: "/robot-images/19_ameca.jpg", Name: "ameca"},
	{ID: "robot020", ImageRef: "/robot-images/20_optimus.jpg", Name: "optimus"},
}
